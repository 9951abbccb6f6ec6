package test

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[uuid.UUID]*model.User
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[uuid.UUID]*model.User),
	}
}

// Create registers user unless the email is already taken.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *user
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.ByEmail[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored user.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.User, 0, len(s.ByID))
	for _, user := range s.ByID {
		out = append(out, *user)
	}
	return out, nil
}

// Update overwrites the mutable user fields.
func (s *UserRepositoryStub) Update(ctx context.Context, id uuid.UUID, name, email string, userType model.UserType) (*model.User, error) {
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	delete(s.ByEmail, user.Email)
	user.Name = name
	user.Email = email
	user.Type = userType
	user.UpdatedAt = time.Now()
	s.ByEmail[email] = user
	return user, nil
}

// Delete removes the user or reports not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByEmail, user.Email)
	delete(s.ByID, id)
	return nil
}

// GetByVerifyToken finds the user holding an unexpired verification token.
func (s *UserRepositoryStub) GetByVerifyToken(ctx context.Context, token string) (*model.User, error) {
	for _, user := range s.ByID {
		if user.VerifyToken != nil && *user.VerifyToken == token {
			if user.VerifyTokenExpires != nil && user.VerifyTokenExpires.Before(time.Now()) {
				continue
			}
			return user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// MarkVerified flags the account verified and clears the token.
func (s *UserRepositoryStub) MarkVerified(ctx context.Context, id uuid.UUID) error {
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.EmailVerified = true
	user.VerifyToken = nil
	user.VerifyTokenExpires = nil
	return nil
}

// SetVerifyToken stores a fresh verification token.
func (s *UserRepositoryStub) SetVerifyToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error {
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.VerifyToken = &token
	user.VerifyTokenExpires = &expires
	return nil
}

// ClientRepositoryStub stores client profiles in-memory for tests.
type ClientRepositoryStub struct {
	ByID     map[uuid.UUID]*model.Client
	ByUserID map[uuid.UUID]*model.Client
	Err      error
}

// NewClientRepositoryStub constructs stub repository with initialized maps.
func NewClientRepositoryStub() *ClientRepositoryStub {
	return &ClientRepositoryStub{
		ByID:     make(map[uuid.UUID]*model.Client),
		ByUserID: make(map[uuid.UUID]*model.Client),
	}
}

// Create stores the profile unless the user already has one.
func (s *ClientRepositoryStub) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByUserID[client.UserID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *client
	stored.ID = uuid.New()
	s.ByID[stored.ID] = &stored
	s.ByUserID[stored.UserID] = &stored
	return &stored, nil
}

// GetByID fetches client by identifier or returns not found.
func (s *ClientRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.ByID[id]; ok {
		return client, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUserID resolves the profile owned by a user.
func (s *ClientRepositoryStub) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.ByUserID[userID]; ok {
		return client, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored clients, optionally filtered by name.
func (s *ClientRepositoryStub) List(ctx context.Context, name string) ([]model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Client, 0, len(s.ByID))
	for _, client := range s.ByID {
		if name != "" && !strings.Contains(strings.ToLower(client.FullName), strings.ToLower(name)) {
			continue
		}
		out = append(out, *client)
	}
	return out, nil
}

// Update overwrites profile fields.
func (s *ClientRepositoryStub) Update(ctx context.Context, id uuid.UUID, fullName, contact, address string) (*model.Client, error) {
	client, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	client.FullName = fullName
	client.Contact = contact
	client.Address = address
	return client, nil
}

// Delete removes the profile or reports not found.
func (s *ClientRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	client, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByUserID, client.UserID)
	delete(s.ByID, id)
	return nil
}

// ProductRepositoryStub stores catalog entries in-memory for tests.
type ProductRepositoryStub struct {
	ByID map[uuid.UUID]*model.Product
	Err  error
}

// NewProductRepositoryStub constructs stub repository with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{ByID: make(map[uuid.UUID]*model.Product)}
}

// Create stores a product with a fresh identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *product
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.ByID[id]; ok {
		return product, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored product.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Product, 0, len(s.ByID))
	for _, product := range s.ByID {
		out = append(out, *product)
	}
	return out, nil
}

// Update replaces the stored product.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.ByID[product.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *product
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// Delete removes the product or reports not found.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.ByID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	return nil
}

// CartRepositoryStub allows tests to customize cart behaviour.
type CartRepositoryStub struct {
	AddFn            func(context.Context, uuid.UUID, uuid.UUID, int) (*model.CartItem, error)
	UpdateQuantityFn func(context.Context, uuid.UUID, uuid.UUID, int) (*model.CartItem, error)
	RemoveFn         func(context.Context, uuid.UUID, uuid.UUID) error
	ListFn           func(context.Context, uuid.UUID) ([]model.CartItem, error)
	ClearFn          func(context.Context, uuid.UUID) error

	Items   []model.CartItem
	Cleared []uuid.UUID
}

// Add delegates to the override or appends to the stored slice.
func (s *CartRepositoryStub) Add(ctx context.Context, clientID, productID uuid.UUID, quantity int) (*model.CartItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, clientID, productID, quantity)
	}
	item := model.CartItem{ID: uuid.New(), ClientID: clientID, ProductID: productID, Quantity: quantity}
	s.Items = append(s.Items, item)
	return &item, nil
}

// UpdateQuantity delegates to the override or mutates the stored slice.
func (s *CartRepositoryStub) UpdateQuantity(ctx context.Context, clientID, itemID uuid.UUID, quantity int) (*model.CartItem, error) {
	if s.UpdateQuantityFn != nil {
		return s.UpdateQuantityFn(ctx, clientID, itemID, quantity)
	}
	for i := range s.Items {
		if s.Items[i].ID == itemID && s.Items[i].ClientID == clientID {
			s.Items[i].Quantity = quantity
			item := s.Items[i]
			return &item, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Remove drops the matching line.
func (s *CartRepositoryStub) Remove(ctx context.Context, clientID, itemID uuid.UUID) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, clientID, itemID)
	}
	for i := range s.Items {
		if s.Items[i].ID == itemID && s.Items[i].ClientID == clientID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ListByClient returns the lines belonging to the client.
func (s *CartRepositoryStub) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.CartItem, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, clientID)
	}
	out := make([]model.CartItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ClientID == clientID {
			out = append(out, item)
		}
	}
	return out, nil
}

// Clear records the invocation and drops the client's lines.
func (s *CartRepositoryStub) Clear(ctx context.Context, clientID uuid.UUID) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, clientID)
	}
	s.Cleared = append(s.Cleared, clientID)
	kept := s.Items[:0]
	for _, item := range s.Items {
		if item.ClientID != clientID {
			kept = append(kept, item)
		}
	}
	s.Items = kept
	return nil
}

// OrderStatusCall stores information about UpdateStatus invocations.
type OrderStatusCall struct {
	OrderID uuid.UUID
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	CreateFn         func(context.Context, uuid.UUID, []repository.OrderLine) (*model.Order, error)
	GetByIDFn        func(context.Context, uuid.UUID) (*model.Order, error)
	ListFn           func(context.Context) ([]model.Order, error)
	ListByClientFn   func(context.Context, uuid.UUID) ([]model.Order, error)
	ConfirmPaymentFn func(context.Context, uuid.UUID, model.PaymentStatus) (*model.Order, error)
	UpdateStatusFn   func(context.Context, uuid.UUID, model.OrderStatus) (*model.Order, error)

	Created []struct {
		ClientID uuid.UUID
		Lines    []repository.OrderLine
	}
	Orders      []model.Order
	StatusCalls []OrderStatusCall
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, clientID uuid.UUID, lines []repository.OrderLine) (*model.Order, error) {
	s.Created = append(s.Created, struct {
		ClientID uuid.UUID
		Lines    []repository.OrderLine
	}{clientID, lines})
	if s.CreateFn != nil {
		return s.CreateFn(ctx, clientID, lines)
	}
	order := &model.Order{ID: uuid.New(), ClientID: clientID, Status: model.OrderStatusReceived, Total: decimal.Zero}
	return order, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns orders from configured slice.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Orders, nil
}

// ListByClient returns the client's orders from the configured slice.
func (s *OrderRepositoryStub) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Order, error) {
	if s.ListByClientFn != nil {
		return s.ListByClientFn(ctx, clientID)
	}
	out := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		if o.ClientID == clientID {
			out = append(out, o)
		}
	}
	return out, nil
}

// ConfirmPayment delegates to the override or flips the stored status.
func (s *OrderRepositoryStub) ConfirmPayment(ctx context.Context, orderID uuid.UUID, payment model.PaymentStatus) (*model.Order, error) {
	if s.ConfirmPaymentFn != nil {
		return s.ConfirmPaymentFn(ctx, orderID, payment)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			if payment == model.PaymentStatusConfirmed {
				s.Orders[i].Status = model.OrderStatusInPreparation
			} else {
				s.Orders[i].Status = model.OrderStatusCancelled
			}
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	s.StatusCalls = append(s.StatusCalls, OrderStatusCall{OrderID: orderID, Status: status})
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = status
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ReportRepositoryStub allows tests to customize report behaviour.
type ReportRepositoryStub struct {
	CreateFn                   func(context.Context, *model.Report) (*model.Report, error)
	GetByIDFn                  func(context.Context, uuid.UUID) (*model.Report, error)
	ListFn                     func(context.Context) ([]model.Report, error)
	SelectBatchForProcessingFn func(context.Context, int) ([]model.Report, error)
	CompleteFn                 func(context.Context, uuid.UUID, string, string, model.ReportSummary) error
	FailFn                     func(context.Context, uuid.UUID) error
	AggregateSalesFn           func(context.Context, *model.Report) ([]model.SalesRow, *model.ReportSummary, error)

	Reports    []model.Report
	Processing []model.Report
	Completed  []uuid.UUID
	Failed     []uuid.UUID
}

// Create stores the report with a fresh identifier and pending status.
func (s *ReportRepositoryStub) Create(ctx context.Context, report *model.Report) (*model.Report, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, report)
	}
	stored := *report
	stored.ID = uuid.New()
	stored.Status = model.ReportStatusPending
	s.Reports = append(s.Reports, stored)
	return &stored, nil
}

// GetByID returns matched report either via override or stored slice.
func (s *ReportRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, r := range s.Reports {
		if r.ID == id {
			report := r
			return &report, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns reports from configured slice.
func (s *ReportRepositoryStub) List(ctx context.Context) ([]model.Report, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Reports, nil
}

// SelectBatchForProcessing returns queued reports for processing.
func (s *ReportRepositoryStub) SelectBatchForProcessing(ctx context.Context, limit int) ([]model.Report, error) {
	if s.SelectBatchForProcessingFn != nil {
		return s.SelectBatchForProcessingFn(ctx, limit)
	}
	batch := s.Processing
	s.Processing = nil
	return batch, nil
}

// Complete records completion invocations.
func (s *ReportRepositoryStub) Complete(ctx context.Context, id uuid.UUID, fileName, objectKey string, summary model.ReportSummary) error {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, id, fileName, objectKey, summary)
	}
	s.Completed = append(s.Completed, id)
	return nil
}

// Fail records failure invocations.
func (s *ReportRepositoryStub) Fail(ctx context.Context, id uuid.UUID) error {
	if s.FailFn != nil {
		return s.FailFn(ctx, id)
	}
	s.Failed = append(s.Failed, id)
	return nil
}

// AggregateSales returns configured aggregation results.
func (s *ReportRepositoryStub) AggregateSales(ctx context.Context, report *model.Report) ([]model.SalesRow, *model.ReportSummary, error) {
	if s.AggregateSalesFn != nil {
		return s.AggregateSalesFn(ctx, report)
	}
	return nil, &model.ReportSummary{TotalRevenue: decimal.Zero}, nil
}
