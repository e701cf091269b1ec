package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/order"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/gateway"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/infra/repository"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
	"github.com/BruksfildServices01/cleaning-booking/internal/notify/notifytest"
	"github.com/BruksfildServices01/cleaning-booking/internal/testutil"
	"github.com/BruksfildServices01/cleaning-booking/internal/usecase/order"
)

var moscow = time.FixedZone("MSK", 3*3600)

func principal(u *models.User) *auth.Principal {
	return &auth.Principal{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   user.Role(u.RoleID),
	}
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func validInput(serviceID uint) order.CreateOrderInput {
	return order.CreateOrderInput{
		ServiceID:      serviceID,
		PropertyTypeID: 1,
		Address:        "Tverskaya 7",
		Square:         testutil.Ptr(40),
		Date:           "2026-03-01T10:30",
		TotalPrice:     price(1500),
	}
}

func orderRow(t *testing.T, db *gorm.DB, id uint) models.Order {
	t.Helper()
	var o models.Order
	require.NoError(t, db.First(&o, id).Error)
	return o
}

func TestCreateOrder_RequiresFields(t *testing.T) {
	db := testutil.NewDB(t)
	uc := order.NewCreateOrder(repository.NewOrderGormRepository(db), &notifytest.Recorder{}, moscow)
	customer := principal(testutil.CreateUser(t, db, user.RoleClient))
	service := testutil.CreateService(t, db, 80)

	cases := map[string]func(in *order.CreateOrderInput){
		"serviceId":    func(in *order.CreateOrderInput) { in.ServiceID = 0 },
		"address":      func(in *order.CreateOrderInput) { in.Address = "  " },
		"propertyType": func(in *order.CreateOrderInput) { in.PropertyTypeID = 0 },
		"date":         func(in *order.CreateOrderInput) { in.Date = "" },
		"totalPrice":   func(in *order.CreateOrderInput) { in.TotalPrice = nil },
	}

	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			in := validInput(service.ID)
			mutate(&in)

			_, err := uc.Execute(context.Background(), customer, in)
			be, ok := httperr.AsBusiness(err)
			require.True(t, ok)
			assert.Equal(t, "missing_field", be.Code)
			assert.Equal(t, field, be.Params["Field"])
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrder_RejectsBadReferences(t *testing.T) {
	db := testutil.NewDB(t)
	uc := order.NewCreateOrder(repository.NewOrderGormRepository(db), &notifytest.Recorder{}, moscow)
	customer := principal(testutil.CreateUser(t, db, user.RoleClient))
	service := testutil.CreateService(t, db, 80)

	in := validInput(9999)
	_, err := uc.Execute(context.Background(), customer, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_service"))

	in = validInput(service.ID)
	in.PropertyTypeID = 9999
	_, err = uc.Execute(context.Background(), customer, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_property_type"))

	in = validInput(service.ID)
	in.Date = "next tuesday"
	_, err = uc.Execute(context.Background(), customer, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	in = validInput(service.ID)
	in.TotalPrice = price(-5)
	_, err = uc.Execute(context.Background(), customer, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_total_price"))

	_, err = uc.Execute(context.Background(), nil, validInput(service.ID))
	assert.True(t, httperr.IsBusiness(err, "unauthenticated"))
}

func TestCreateOrder_ThenListRoundTrip(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewOrderGormRepository(db)
	rec := &notifytest.Recorder{}
	customer := principal(testutil.CreateUser(t, db, user.RoleClient))

	// 80 * 40 = 3200, so the submitted 1500 does not match the quote.
	service := testutil.CreateService(t, db, 80)

	in := validInput(service.ID)
	in.Rooms = testutil.Ptr(2)
	created, err := order.NewCreateOrder(repo, rec, moscow).Execute(context.Background(), customer, in)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	list, err := order.NewListOrders(repo).Execute(context.Background(), customer)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.True(t, decimal.NewFromInt(1500).Equal(got.TotalPrice))
	assert.Equal(t, domain.StatusPending.ID(), got.Status.ID)
	assert.Equal(t, "Ожидает подтверждения", got.Status.Description)
	assert.Equal(t, domain.PaymentUnpaid.ID(), got.PaymentStatusID)
	assert.Equal(t, "unpaid", got.PaymentStatus)
	assert.Equal(t, service.Name, got.ServiceName)
	assert.True(t, time.Date(2026, 3, 1, 10, 30, 0, 0, moscow).Equal(got.Date))
	require.NotNil(t, got.EndDate)
	assert.Equal(t, 120*time.Minute, got.EndDate.Sub(got.Date))

	sent := rec.Sent()
	require.Len(t, sent, 1)
	require.NotNil(t, sent[0].Role)
	assert.Equal(t, user.RoleAdmin, *sent[0].Role)
	assert.Equal(t, "notify.order_created", sent[0].Notice.Key)
	assert.Equal(t, notification.OrderRef{OrderID: created.ID}, sent[0].Notice.Target)
}

func TestListOrders_OwnerOnlyChronological(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewOrderGormRepository(db)
	owner := testutil.CreateUser(t, db, user.RoleClient)
	other := testutil.CreateUser(t, db, user.RoleClient)
	service := testutil.CreateService(t, db, 80)

	first := testutil.CreateOrder(t, db, owner.ID, service.ID)
	testutil.CreateOrder(t, db, other.ID, service.ID)
	second := testutil.CreateOrder(t, db, owner.ID, service.ID)

	list, err := order.NewListOrders(repo).Execute(context.Background(), principal(owner))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestGetOrder_HidesForeignOrders(t *testing.T) {
	db := testutil.NewDB(t)
	uc := order.NewGetOrder(repository.NewOrderGormRepository(db))
	owner := testutil.CreateUser(t, db, user.RoleClient)
	other := testutil.CreateUser(t, db, user.RoleClient)
	o := testutil.CreateOrder(t, db, owner.ID, testutil.CreateService(t, db, 80).ID)

	view, err := uc.Execute(context.Background(), principal(owner), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, view.ID)

	_, err = uc.Execute(context.Background(), principal(other), o.ID)
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))

	_, err = uc.Execute(context.Background(), principal(owner), 9999)
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))
}

func TestCancelOrder(t *testing.T) {
	db := testutil.NewDB(t)
	uc := order.NewCancelOrder(repository.NewOrderGormRepository(db))
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, user.RoleClient)
	other := testutil.CreateUser(t, db, user.RoleClient)
	service := testutil.CreateService(t, db, 80)

	t.Run("foreign order looks missing", func(t *testing.T) {
		o := testutil.CreateOrder(t, db, owner.ID, service.ID)

		err := uc.Execute(ctx, principal(other), o.ID)
		assert.True(t, httperr.IsBusiness(err, "order_not_found"))
		assert.Equal(t, domain.StatusPending.ID(), orderRow(t, db, o.ID).StatusID)
	})

	t.Run("pending order is cancelled once", func(t *testing.T) {
		o := testutil.CreateOrder(t, db, owner.ID, service.ID)

		require.NoError(t, uc.Execute(ctx, principal(owner), o.ID))
		assert.Equal(t, domain.StatusCancelled.ID(), orderRow(t, db, o.ID).StatusID)

		err := uc.Execute(ctx, principal(owner), o.ID)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("non-pending statuses are kept", func(t *testing.T) {
		for _, s := range []domain.Status{domain.StatusAssigned, domain.StatusInProgress, domain.StatusCompleted} {
			o := testutil.CreateOrder(t, db, owner.ID, service.ID)
			require.NoError(t, db.Model(o).Update("status_id", s.ID()).Error)

			err := uc.Execute(ctx, principal(owner), o.ID)
			assert.True(t, httperr.IsBusiness(err, "invalid_state"), s.Name())
			assert.Equal(t, s.ID(), orderRow(t, db, o.ID).StatusID)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		err := uc.Execute(ctx, principal(owner), 9999)
		assert.True(t, httperr.IsBusiness(err, "order_not_found"))
	})
}

func TestPayOrder_MethodMapping(t *testing.T) {
	db := testutil.NewDB(t)
	uc := order.NewPayOrder(repository.NewOrderGormRepository(db))
	owner := testutil.CreateUser(t, db, user.RoleClient)
	service := testutil.CreateService(t, db, 80)

	cases := []struct {
		method string
		id     domain.PaymentMethod
		status domain.PaymentStatus
		label  string
	}{
		{"cash", domain.MethodCash, domain.PaymentUnpaid, "unpaid"},
		{"card", domain.MethodCard, domain.PaymentPaid, "paid"},
		{"online", domain.MethodOnline, domain.PaymentPaid, "paid"},
	}

	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			o := testutil.CreateOrder(t, db, owner.ID, service.ID)

			view, err := uc.Execute(context.Background(), principal(owner), o.ID, tc.method)
			require.NoError(t, err)
			require.NotNil(t, view.PaymentMethodID)
			assert.Equal(t, tc.id.ID(), *view.PaymentMethodID)
			assert.Equal(t, tc.status.ID(), view.PaymentStatusID)
			assert.Equal(t, tc.label, view.PaymentStatus)
		})
	}

	t.Run("unknown method", func(t *testing.T) {
		o := testutil.CreateOrder(t, db, owner.ID, service.ID)

		_, err := uc.Execute(context.Background(), principal(owner), o.ID, "bitcoin")
		assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))
		assert.Nil(t, orderRow(t, db, o.ID).PaymentMethodID)
	})
}

func TestPayOrder_AtMostOnce(t *testing.T) {
	db := testutil.NewDB(t)
	uc := order.NewPayOrder(repository.NewOrderGormRepository(db))
	owner := testutil.CreateUser(t, db, user.RoleClient)
	other := testutil.CreateUser(t, db, user.RoleClient)
	o := testutil.CreateOrder(t, db, owner.ID, testutil.CreateService(t, db, 80).ID)

	_, err := uc.Execute(context.Background(), principal(other), o.ID, "card")
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))

	_, err = uc.Execute(context.Background(), principal(owner), o.ID, "card")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), principal(owner), o.ID, "online")
	assert.True(t, httperr.IsBusiness(err, "already_paid"))

	row := orderRow(t, db, o.ID)
	require.NotNil(t, row.PaymentMethodID)
	assert.Equal(t, domain.MethodCard.ID(), *row.PaymentMethodID)
	assert.Equal(t, domain.PaymentPaid.ID(), row.PaymentStatusID)
}

func TestAssignEmployee(t *testing.T) {
	db := testutil.NewDB(t)
	rec := &notifytest.Recorder{}
	uc := order.NewAssignEmployee(
		repository.NewOrderGormRepository(db),
		repository.NewUserGormRepository(db),
		rec,
	)
	ctx := context.Background()

	customer := testutil.CreateUser(t, db, user.RoleClient)
	first := testutil.CreateUser(t, db, user.RoleEmployee)
	second := testutil.CreateUser(t, db, user.RoleEmployee)
	o := testutil.CreateOrder(t, db, customer.ID, testutil.CreateService(t, db, 80).ID)

	require.NoError(t, uc.Execute(ctx, o.ID, first.ID))
	require.NoError(t, uc.Execute(ctx, o.ID, second.ID))

	row := orderRow(t, db, o.ID)
	require.NotNil(t, row.EmployeeID)
	assert.Equal(t, second.ID, *row.EmployeeID)

	sent := rec.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, second.ID, sent[1].Notice.UserID)
	assert.Equal(t, notification.OrderRef{OrderID: o.ID}, sent[1].Notice.Target)

	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, o.ID, customer.ID), "invalid_employee"))
	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, o.ID, 9999), "employee_not_found"))
	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, 9999, first.ID), "order_not_found"))
	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, o.ID, 0), "missing_field"))
}

func TestAdminOrders(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewOrderGormRepository(db)
	users := repository.NewUserGormRepository(db)
	ctx := context.Background()

	customer := testutil.CreateUser(t, db, user.RoleClient)
	employee := testutil.CreateUser(t, db, user.RoleEmployee)
	service := testutil.CreateService(t, db, 80)

	created, err := order.NewAdminCreateOrder(repo, users, moscow).Execute(ctx, order.AdminCreateOrderInput{
		UserID:     customer.ID,
		StatusID:   domain.StatusAssigned.ID(),
		TotalPrice: price(2000),
		ServiceID:  service.ID,
		EmployeeID: &employee.ID,
	})
	require.NoError(t, err)
	assigned := created.ID
	unassigned := testutil.CreateOrder(t, db, customer.ID, service.ID).ID

	t.Run("create validates", func(t *testing.T) {
		uc := order.NewAdminCreateOrder(repo, users, moscow)

		_, err := uc.Execute(ctx, order.AdminCreateOrderInput{StatusID: 1, TotalPrice: price(1)})
		assert.True(t, httperr.IsBusiness(err, "missing_field"))

		_, err = uc.Execute(ctx, order.AdminCreateOrderInput{UserID: 9999, StatusID: 1, TotalPrice: price(1)})
		assert.True(t, httperr.IsBusiness(err, "user_not_found"))

		_, err = uc.Execute(ctx, order.AdminCreateOrderInput{UserID: customer.ID, StatusID: 42, TotalPrice: price(1)})
		assert.True(t, httperr.IsBusiness(err, "invalid_order_status"))
	})

	t.Run("lists", func(t *testing.T) {
		all, err := order.NewListAdminOrders(repo).Execute(ctx, false)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, customer.Name, all[0].UserName)

		free, err := order.NewListAdminOrders(repo).Execute(ctx, true)
		require.NoError(t, err)
		require.Len(t, free, 1)
		assert.Equal(t, unassigned, free[0].ID)
	})

	t.Run("update keeps owner", func(t *testing.T) {
		uc := order.NewAdminUpdateOrder(repo, moscow)

		got, err := uc.Execute(ctx, assigned, order.AdminUpdateOrderInput{
			StatusID:   testutil.Ptr(domain.StatusCompleted.ID()),
			TotalPrice: price(2100),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted.ID(), got.StatusID)
		assert.True(t, decimal.NewFromInt(2100).Equal(got.TotalPrice))
		assert.Equal(t, customer.ID, got.UserID)

		_, err = uc.Execute(ctx, assigned, order.AdminUpdateOrderInput{StatusID: testutil.Ptr(uint(9))})
		assert.True(t, httperr.IsBusiness(err, "invalid_order_status"))

		_, err = uc.Execute(ctx, 9999, order.AdminUpdateOrderInput{Comments: testutil.Ptr("x")})
		assert.True(t, httperr.IsBusiness(err, "order_not_found"))
	})

	t.Run("delete", func(t *testing.T) {
		uc := order.NewAdminDeleteOrder(repo)

		require.NoError(t, uc.Execute(ctx, unassigned))
		assert.True(t, httperr.IsBusiness(uc.Execute(ctx, unassigned), "order_not_found"))
	})
}

type gatewayMock struct {
	mock.Mock
}

func (m *gatewayMock) CreateCheckout(ctx context.Context, req gateway.CheckoutRequest) (*gateway.Checkout, error) {
	args := m.Called(ctx, req)
	if c, ok := args.Get(0).(*gateway.Checkout); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestStartCheckout(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewOrderGormRepository(db)
	owner := testutil.CreateUser(t, db, user.RoleClient)
	o := testutil.CreateOrder(t, db, owner.ID, testutil.CreateService(t, db, 80).ID)

	gw := &gatewayMock{}
	gw.On("CreateCheckout", mock.Anything, mock.MatchedBy(func(req gateway.CheckoutRequest) bool {
		return req.OrderID == o.ID && req.Amount.Equal(decimal.NewFromInt(3200)) && req.PayerEmail == owner.Email
	})).Return(&gateway.Checkout{PreferenceID: "pref-1", CheckoutURL: "https://pay.example/pref-1"}, nil).Once()

	checkout, err := order.NewStartCheckout(repo, gw).Execute(context.Background(), principal(owner), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "pref-1", checkout.PreferenceID)
	gw.AssertExpectations(t)

	// Payment columns are untouched until the customer pays.
	assert.Equal(t, domain.PaymentUnpaid.ID(), orderRow(t, db, o.ID).PaymentStatusID)

	_, err = order.NewStartCheckout(repo, gateway.Disabled{}).Execute(context.Background(), principal(owner), o.ID)
	assert.True(t, httperr.IsBusiness(err, "gateway_unavailable"))

	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", o.ID).Update("payment_status_id", domain.PaymentPaid.ID()).Error)
	_, err = order.NewStartCheckout(repo, gw).Execute(context.Background(), principal(owner), o.ID)
	assert.True(t, httperr.IsBusiness(err, "already_paid"))
}
