package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/storefront/internal/cache"
	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
	"github.com/shopworks/storefront/internal/metrics"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
	"github.com/shopworks/storefront/internal/usecase"
)

// Cached product responses are keyed by request URI under this prefix.
const productsCachePrefix = "http:/api/products"

// HealthChecker reports readiness of the backing database.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CommerceFacade aggregates the use cases behind the surface the HTTP layer
// and the report worker consume.
type CommerceFacade struct {
	auth     *usecase.AuthUseCase
	users    *usecase.UserUseCase
	clients  *usecase.ClientUseCase
	products *usecase.ProductUseCase
	carts    *usecase.CartUseCase
	orders   *usecase.OrderUseCase
	reports  *usecase.ReportUseCase
	store    cache.Store
	metrics  *metrics.Metrics
	health   HealthChecker
}

// NewCommerceFacade constructs the facade.
func NewCommerceFacade(
	auth *usecase.AuthUseCase,
	users *usecase.UserUseCase,
	clients *usecase.ClientUseCase,
	products *usecase.ProductUseCase,
	carts *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	reports *usecase.ReportUseCase,
	store cache.Store,
	m *metrics.Metrics,
	health HealthChecker,
) *CommerceFacade {
	return &CommerceFacade{
		auth:     auth,
		users:    users,
		clients:  clients,
		products: products,
		carts:    carts,
		orders:   orders,
		reports:  reports,
		store:    store,
		metrics:  m,
		health:   health,
	}
}

func (f *CommerceFacade) Register(ctx context.Context, email, password, name string, userType model.UserType) (*model.User, pkgAuth.TokenPair, error) {
	return f.auth.Register(ctx, email, password, name, userType)
}

func (f *CommerceFacade) Authenticate(ctx context.Context, email, password string) (*model.User, pkgAuth.TokenPair, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *CommerceFacade) Refresh(ctx context.Context, refreshToken string) (pkgAuth.TokenPair, error) {
	return f.auth.Refresh(ctx, refreshToken)
}

func (f *CommerceFacade) ParseAccessToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseAccessToken(token)
}

func (f *CommerceFacade) VerifyEmail(ctx context.Context, token string) error {
	return f.users.VerifyEmail(ctx, token)
}

func (f *CommerceFacade) ResendVerification(ctx context.Context, email string) error {
	return f.users.ResendVerification(ctx, email)
}

func (f *CommerceFacade) Profile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *CommerceFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

func (f *CommerceFacade) User(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return f.users.Get(ctx, id)
}

func (f *CommerceFacade) UpdateUser(ctx context.Context, id uuid.UUID, name, email string, userType model.UserType) (*model.User, error) {
	return f.users.Update(ctx, id, name, email, userType)
}

func (f *CommerceFacade) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return f.users.Delete(ctx, id)
}

func (f *CommerceFacade) CreateClient(ctx context.Context, userID uuid.UUID, fullName, contact, address string) (*model.Client, error) {
	return f.clients.Create(ctx, userID, fullName, contact, address)
}

func (f *CommerceFacade) Clients(ctx context.Context, name string) ([]model.Client, error) {
	return f.clients.List(ctx, name)
}

func (f *CommerceFacade) Client(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return f.clients.Get(ctx, id)
}

func (f *CommerceFacade) ClientForUser(ctx context.Context, userID uuid.UUID) (*model.Client, error) {
	return f.clients.GetByUserID(ctx, userID)
}

func (f *CommerceFacade) UpdateClient(ctx context.Context, id uuid.UUID, fullName, contact, address string) (*model.Client, error) {
	return f.clients.Update(ctx, id, fullName, contact, address)
}

func (f *CommerceFacade) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return f.clients.Delete(ctx, id)
}

func (f *CommerceFacade) CreateProduct(ctx context.Context, name, description string, price decimal.Decimal, stock int) (*model.Product, error) {
	product, err := f.products.Create(ctx, name, description, price, stock)
	if err != nil {
		return nil, err
	}
	_ = f.store.InvalidatePrefix(ctx, productsCachePrefix)
	return product, nil
}

func (f *CommerceFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *CommerceFacade) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return f.products.Get(ctx, id)
}

func (f *CommerceFacade) UpdateProduct(ctx context.Context, id uuid.UUID, name, description string, price decimal.Decimal, stock int) (*model.Product, error) {
	product, err := f.products.Update(ctx, id, name, description, price, stock)
	if err != nil {
		return nil, err
	}
	_ = f.store.InvalidatePrefix(ctx, productsCachePrefix)
	return product, nil
}

func (f *CommerceFacade) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := f.products.Delete(ctx, id); err != nil {
		return err
	}
	_ = f.store.InvalidatePrefix(ctx, productsCachePrefix)
	return nil
}

func (f *CommerceFacade) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*model.CartItem, error) {
	client, err := f.clients.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return f.carts.Add(ctx, client.ID, productID, quantity)
}

func (f *CommerceFacade) Cart(ctx context.Context, userID uuid.UUID) ([]model.CartItem, decimal.Decimal, error) {
	client, err := f.clients.GetByUserID(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	items, err := f.carts.List(ctx, client.ID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range items {
		if item.Product != nil {
			total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return items, total, nil
}

func (f *CommerceFacade) UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*model.CartItem, error) {
	client, err := f.clients.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return f.carts.UpdateQuantity(ctx, client.ID, itemID, quantity)
}

func (f *CommerceFacade) RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) error {
	client, err := f.clients.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return f.carts.Remove(ctx, client.ID, itemID)
}

func (f *CommerceFacade) ClearCart(ctx context.Context, userID uuid.UUID) error {
	client, err := f.clients.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return f.carts.Clear(ctx, client.ID)
}

func (f *CommerceFacade) PlaceOrder(ctx context.Context, userID uuid.UUID, lines []repository.OrderLine) (*model.Order, error) {
	client, err := f.clients.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	order, err := f.orders.Create(ctx, client.ID, lines)
	if err != nil {
		return nil, err
	}
	f.metrics.OrdersPlaced.Inc()
	return order, nil
}

func (f *CommerceFacade) Checkout(ctx context.Context, userID uuid.UUID) (*model.Order, error) {
	client, err := f.clients.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	order, err := f.orders.CreateFromCart(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	f.metrics.OrdersPlaced.Inc()
	return order, nil
}

func (f *CommerceFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *CommerceFacade) OrdersForUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	client, err := f.clients.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return f.orders.ListByClient(ctx, client.ID)
}

func (f *CommerceFacade) Order(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *CommerceFacade) OrderForUser(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error) {
	return f.ownedOrder(ctx, userID, orderID)
}

func (f *CommerceFacade) ConfirmPayment(ctx context.Context, orderID uuid.UUID, status model.PaymentStatus) (*model.Order, error) {
	return f.orders.ConfirmPayment(ctx, orderID, status)
}

func (f *CommerceFacade) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *CommerceFacade) CancelOrder(ctx context.Context, orderID uuid.UUID) (*model.Order, error) {
	return f.orders.Cancel(ctx, orderID)
}

func (f *CommerceFacade) CancelOwnOrder(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error) {
	if _, err := f.ownedOrder(ctx, userID, orderID); err != nil {
		return nil, err
	}
	return f.orders.Cancel(ctx, orderID)
}

func (f *CommerceFacade) RequestReport(ctx context.Context, requestedBy uuid.UUID, startDate, endDate time.Time, productName, clientType string) (*model.Report, error) {
	return f.reports.Request(ctx, requestedBy, startDate, endDate, productName, clientType)
}

func (f *CommerceFacade) Reports(ctx context.Context) ([]model.Report, error) {
	return f.reports.List(ctx)
}

func (f *CommerceFacade) Report(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	return f.reports.Get(ctx, id)
}

func (f *CommerceFacade) SalesSummary(ctx context.Context, startDate, endDate time.Time, productName, clientType string) ([]model.SalesRow, *model.ReportSummary, error) {
	return f.reports.Summarize(ctx, startDate, endDate, productName, clientType)
}

// ReportsForProcessing claims pending reports for the background worker.
func (f *CommerceFacade) ReportsForProcessing(ctx context.Context, limit int) ([]model.Report, error) {
	return f.reports.SelectBatchForProcessing(ctx, limit)
}

// AggregateReport runs the sales aggregation for one claimed report.
func (f *CommerceFacade) AggregateReport(ctx context.Context, report *model.Report) ([]model.SalesRow, *model.ReportSummary, error) {
	return f.reports.Aggregate(ctx, report)
}

// CompleteReport stores the generated file reference and totals.
func (f *CommerceFacade) CompleteReport(ctx context.Context, id uuid.UUID, fileName, objectKey string, summary model.ReportSummary) error {
	return f.reports.Complete(ctx, id, fileName, objectKey, summary)
}

// FailReport marks a claimed report as failed.
func (f *CommerceFacade) FailReport(ctx context.Context, id uuid.UUID) error {
	return f.reports.Fail(ctx, id)
}

// Health probes the database and, when the cache runs against a live backend,
// the cache connection as well.
func (f *CommerceFacade) Health(ctx context.Context) error {
	if err := f.health.HealthCheck(ctx); err != nil {
		return err
	}
	if pinger, ok := f.store.(cache.Pinger); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

func (f *CommerceFacade) ownedOrder(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error) {
	client, err := f.clients.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	order, err := f.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ClientID != client.ID {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}
