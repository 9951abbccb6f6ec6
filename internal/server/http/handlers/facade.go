package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, name string, userType model.UserType) (*model.User, pkgAuth.TokenPair, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, pkgAuth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (pkgAuth.TokenPair, error)
	ParseAccessToken(token string) (*pkgAuth.Claims, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	Profile(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

// UserFacade covers account administration.
type UserFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	User(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, name, email string, userType model.UserType) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// ClientFacade covers customer profile operations.
type ClientFacade interface {
	CreateClient(ctx context.Context, userID uuid.UUID, fullName, contact, address string) (*model.Client, error)
	Clients(ctx context.Context, name string) ([]model.Client, error)
	Client(ctx context.Context, id uuid.UUID) (*model.Client, error)
	ClientForUser(ctx context.Context, userID uuid.UUID) (*model.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, fullName, contact, address string) (*model.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

// CatalogFacade covers product catalog operations.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, name, description string, price decimal.Decimal, stock int) (*model.Product, error)
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id uuid.UUID) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, name, description string, price decimal.Decimal, stock int) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// CartFacade covers shopping cart operations scoped to the calling user.
type CartFacade interface {
	AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*model.CartItem, error)
	Cart(ctx context.Context, userID uuid.UUID) ([]model.CartItem, decimal.Decimal, error)
	UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*model.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

// OrderFacade covers order placement and lifecycle operations.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, lines []repository.OrderLine) (*model.Order, error)
	Checkout(ctx context.Context, userID uuid.UUID) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	OrdersForUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	Order(ctx context.Context, id uuid.UUID) (*model.Order, error)
	OrderForUser(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error)
	ConfirmPayment(ctx context.Context, orderID uuid.UUID, status model.PaymentStatus) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID) (*model.Order, error)
	CancelOwnOrder(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error)
}

// ReportFacade covers sales reporting.
type ReportFacade interface {
	RequestReport(ctx context.Context, requestedBy uuid.UUID, startDate, endDate time.Time, productName, clientType string) (*model.Report, error)
	Reports(ctx context.Context) ([]model.Report, error)
	Report(ctx context.Context, id uuid.UUID) (*model.Report, error)
	SalesSummary(ctx context.Context, startDate, endDate time.Time, productName, clientType string) ([]model.SalesRow, *model.ReportSummary, error)
}

// HealthFacade reports readiness of the backing services.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// CommerceFacade aggregates the full set of operations used across handlers.
type CommerceFacade interface {
	AuthFacade
	UserFacade
	ClientFacade
	CatalogFacade
	CartFacade
	OrderFacade
	ReportFacade
	HealthFacade
}
