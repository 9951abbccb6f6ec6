package test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
)

// CommerceFacadeStub provides controllable behaviour for HTTP endpoints.
// Every operation can be overridden; defaults return benign fixed data.
type CommerceFacadeStub struct {
	RegisterFn           func(context.Context, string, string, string, model.UserType) (*model.User, pkgAuth.TokenPair, error)
	AuthenticateFn       func(context.Context, string, string) (*model.User, pkgAuth.TokenPair, error)
	RefreshFn            func(context.Context, string) (pkgAuth.TokenPair, error)
	ParseFn              func(string) (*pkgAuth.Claims, error)
	VerifyEmailFn        func(context.Context, string) error
	ResendVerificationFn func(context.Context, string) error
	ProfileFn            func(context.Context, uuid.UUID) (*model.User, error)

	UsersFn      func(context.Context) ([]model.User, error)
	UserFn       func(context.Context, uuid.UUID) (*model.User, error)
	UpdateUserFn func(context.Context, uuid.UUID, string, string, model.UserType) (*model.User, error)
	DeleteUserFn func(context.Context, uuid.UUID) error

	CreateClientFn  func(context.Context, uuid.UUID, string, string, string) (*model.Client, error)
	ClientsFn       func(context.Context, string) ([]model.Client, error)
	ClientFn        func(context.Context, uuid.UUID) (*model.Client, error)
	ClientForUserFn func(context.Context, uuid.UUID) (*model.Client, error)
	UpdateClientFn  func(context.Context, uuid.UUID, string, string, string) (*model.Client, error)
	DeleteClientFn  func(context.Context, uuid.UUID) error

	CreateProductFn func(context.Context, string, string, decimal.Decimal, int) (*model.Product, error)
	ProductsFn      func(context.Context) ([]model.Product, error)
	ProductFn       func(context.Context, uuid.UUID) (*model.Product, error)
	UpdateProductFn func(context.Context, uuid.UUID, string, string, decimal.Decimal, int) (*model.Product, error)
	DeleteProductFn func(context.Context, uuid.UUID) error

	AddToCartFn      func(context.Context, uuid.UUID, uuid.UUID, int) (*model.CartItem, error)
	CartFn           func(context.Context, uuid.UUID) ([]model.CartItem, decimal.Decimal, error)
	UpdateCartItemFn func(context.Context, uuid.UUID, uuid.UUID, int) (*model.CartItem, error)
	RemoveCartItemFn func(context.Context, uuid.UUID, uuid.UUID) error
	ClearCartFn      func(context.Context, uuid.UUID) error

	PlaceOrderFn        func(context.Context, uuid.UUID, []repository.OrderLine) (*model.Order, error)
	CheckoutFn          func(context.Context, uuid.UUID) (*model.Order, error)
	OrdersFn            func(context.Context) ([]model.Order, error)
	OrdersForUserFn     func(context.Context, uuid.UUID) ([]model.Order, error)
	OrderFn             func(context.Context, uuid.UUID) (*model.Order, error)
	OrderForUserFn      func(context.Context, uuid.UUID, uuid.UUID) (*model.Order, error)
	ConfirmPaymentFn    func(context.Context, uuid.UUID, model.PaymentStatus) (*model.Order, error)
	UpdateOrderStatusFn func(context.Context, uuid.UUID, model.OrderStatus) (*model.Order, error)
	CancelOrderFn       func(context.Context, uuid.UUID) (*model.Order, error)
	CancelOwnOrderFn    func(context.Context, uuid.UUID, uuid.UUID) (*model.Order, error)

	RequestReportFn func(context.Context, uuid.UUID, time.Time, time.Time, string, string) (*model.Report, error)
	ReportsFn       func(context.Context) ([]model.Report, error)
	ReportFn        func(context.Context, uuid.UUID) (*model.Report, error)
	SalesSummaryFn  func(context.Context, time.Time, time.Time, string, string) ([]model.SalesRow, *model.ReportSummary, error)

	HealthFn func(context.Context) error
}

func (s *CommerceFacadeStub) Register(ctx context.Context, email, password, name string, userType model.UserType) (*model.User, pkgAuth.TokenPair, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, name, userType)
	}
	return &model.User{ID: uuid.New(), Email: email, Name: name, Type: userType}, pkgAuth.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (s *CommerceFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, pkgAuth.TokenPair, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: uuid.New(), Email: email, Type: model.UserTypeClient}, pkgAuth.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (s *CommerceFacadeStub) Refresh(ctx context.Context, refreshToken string) (pkgAuth.TokenPair, error) {
	if s.RefreshFn != nil {
		return s.RefreshFn(ctx, refreshToken)
	}
	return pkgAuth.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (s *CommerceFacadeStub) ParseAccessToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.Claims{UserID: uuid.New(), UserType: model.UserTypeClient}, nil
}

func (s *CommerceFacadeStub) VerifyEmail(ctx context.Context, token string) error {
	if s.VerifyEmailFn != nil {
		return s.VerifyEmailFn(ctx, token)
	}
	return nil
}

func (s *CommerceFacadeStub) ResendVerification(ctx context.Context, email string) error {
	if s.ResendVerificationFn != nil {
		return s.ResendVerificationFn(ctx, email)
	}
	return nil
}

func (s *CommerceFacadeStub) Profile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Email: "user@example.com", Type: model.UserTypeClient}, nil
}

func (s *CommerceFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: uuid.New(), Email: "user@example.com"}}, nil
}

func (s *CommerceFacadeStub) User(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Email: "user@example.com"}, nil
}

func (s *CommerceFacadeStub) UpdateUser(ctx context.Context, id uuid.UUID, name, email string, userType model.UserType) (*model.User, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, id, name, email, userType)
	}
	return &model.User{ID: id, Name: name, Email: email, Type: userType}, nil
}

func (s *CommerceFacadeStub) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

func (s *CommerceFacadeStub) CreateClient(ctx context.Context, userID uuid.UUID, fullName, contact, address string) (*model.Client, error) {
	if s.CreateClientFn != nil {
		return s.CreateClientFn(ctx, userID, fullName, contact, address)
	}
	return &model.Client{ID: uuid.New(), UserID: userID, FullName: fullName, Contact: contact, Address: address}, nil
}

func (s *CommerceFacadeStub) Clients(ctx context.Context, name string) ([]model.Client, error) {
	if s.ClientsFn != nil {
		return s.ClientsFn(ctx, name)
	}
	return []model.Client{{ID: uuid.New()}}, nil
}

func (s *CommerceFacadeStub) Client(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	if s.ClientFn != nil {
		return s.ClientFn(ctx, id)
	}
	return &model.Client{ID: id}, nil
}

func (s *CommerceFacadeStub) ClientForUser(ctx context.Context, userID uuid.UUID) (*model.Client, error) {
	if s.ClientForUserFn != nil {
		return s.ClientForUserFn(ctx, userID)
	}
	return &model.Client{ID: uuid.New(), UserID: userID}, nil
}

func (s *CommerceFacadeStub) UpdateClient(ctx context.Context, id uuid.UUID, fullName, contact, address string) (*model.Client, error) {
	if s.UpdateClientFn != nil {
		return s.UpdateClientFn(ctx, id, fullName, contact, address)
	}
	return &model.Client{ID: id, FullName: fullName, Contact: contact, Address: address}, nil
}

func (s *CommerceFacadeStub) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if s.DeleteClientFn != nil {
		return s.DeleteClientFn(ctx, id)
	}
	return nil
}

func (s *CommerceFacadeStub) CreateProduct(ctx context.Context, name, description string, price decimal.Decimal, stock int) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, name, description, price, stock)
	}
	return &model.Product{ID: uuid.New(), Name: name, Description: description, Price: price, Stock: stock}, nil
}

func (s *CommerceFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: uuid.New(), Name: "widget", Price: decimal.New(999, -2), Stock: 10}}, nil
}

func (s *CommerceFacadeStub) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "widget", Price: decimal.New(999, -2), Stock: 10}, nil
}

func (s *CommerceFacadeStub) UpdateProduct(ctx context.Context, id uuid.UUID, name, description string, price decimal.Decimal, stock int) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, name, description, price, stock)
	}
	return &model.Product{ID: id, Name: name, Description: description, Price: price, Stock: stock}, nil
}

func (s *CommerceFacadeStub) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

func (s *CommerceFacadeStub) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*model.CartItem, error) {
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, userID, productID, quantity)
	}
	return &model.CartItem{ID: uuid.New(), ProductID: productID, Quantity: quantity}, nil
}

func (s *CommerceFacadeStub) Cart(ctx context.Context, userID uuid.UUID) ([]model.CartItem, decimal.Decimal, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return []model.CartItem{}, decimal.Zero, nil
}

func (s *CommerceFacadeStub) UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*model.CartItem, error) {
	if s.UpdateCartItemFn != nil {
		return s.UpdateCartItemFn(ctx, userID, itemID, quantity)
	}
	return &model.CartItem{ID: itemID, Quantity: quantity}, nil
}

func (s *CommerceFacadeStub) RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if s.RemoveCartItemFn != nil {
		return s.RemoveCartItemFn(ctx, userID, itemID)
	}
	return nil
}

func (s *CommerceFacadeStub) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if s.ClearCartFn != nil {
		return s.ClearCartFn(ctx, userID)
	}
	return nil
}

func (s *CommerceFacadeStub) PlaceOrder(ctx context.Context, userID uuid.UUID, lines []repository.OrderLine) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, userID, lines)
	}
	return &model.Order{ID: uuid.New(), Status: model.OrderStatusReceived, Total: decimal.Zero}, nil
}

func (s *CommerceFacadeStub) Checkout(ctx context.Context, userID uuid.UUID) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID)
	}
	return &model.Order{ID: uuid.New(), Status: model.OrderStatusReceived, Total: decimal.Zero}, nil
}

func (s *CommerceFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: uuid.New(), Status: model.OrderStatusReceived}}, nil
}

func (s *CommerceFacadeStub) OrdersForUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	if s.OrdersForUserFn != nil {
		return s.OrdersForUserFn(ctx, userID)
	}
	return []model.Order{{ID: uuid.New(), Status: model.OrderStatusReceived}}, nil
}

func (s *CommerceFacadeStub) Order(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusReceived}, nil
}

func (s *CommerceFacadeStub) OrderForUser(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error) {
	if s.OrderForUserFn != nil {
		return s.OrderForUserFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusReceived}, nil
}

func (s *CommerceFacadeStub) ConfirmPayment(ctx context.Context, orderID uuid.UUID, status model.PaymentStatus) (*model.Order, error) {
	if s.ConfirmPaymentFn != nil {
		return s.ConfirmPaymentFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusInPreparation}, nil
}

func (s *CommerceFacadeStub) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

func (s *CommerceFacadeStub) CancelOrder(ctx context.Context, orderID uuid.UUID) (*model.Order, error) {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusCancelled}, nil
}

func (s *CommerceFacadeStub) CancelOwnOrder(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error) {
	if s.CancelOwnOrderFn != nil {
		return s.CancelOwnOrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusCancelled}, nil
}

func (s *CommerceFacadeStub) RequestReport(ctx context.Context, requestedBy uuid.UUID, startDate, endDate time.Time, productName, clientType string) (*model.Report, error) {
	if s.RequestReportFn != nil {
		return s.RequestReportFn(ctx, requestedBy, startDate, endDate, productName, clientType)
	}
	return &model.Report{ID: uuid.New(), Status: model.ReportStatusPending, StartDate: startDate, EndDate: endDate}, nil
}

func (s *CommerceFacadeStub) Reports(ctx context.Context) ([]model.Report, error) {
	if s.ReportsFn != nil {
		return s.ReportsFn(ctx)
	}
	return []model.Report{{ID: uuid.New(), Status: model.ReportStatusPending}}, nil
}

func (s *CommerceFacadeStub) Report(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	if s.ReportFn != nil {
		return s.ReportFn(ctx, id)
	}
	return &model.Report{ID: id, Status: model.ReportStatusCompleted}, nil
}

func (s *CommerceFacadeStub) SalesSummary(ctx context.Context, startDate, endDate time.Time, productName, clientType string) ([]model.SalesRow, *model.ReportSummary, error) {
	if s.SalesSummaryFn != nil {
		return s.SalesSummaryFn(ctx, startDate, endDate, productName, clientType)
	}
	return []model.SalesRow{}, &model.ReportSummary{TotalRevenue: decimal.Zero}, nil
}

func (s *CommerceFacadeStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}
