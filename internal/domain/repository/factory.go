package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Clients() ClientRepository
	Products() ProductRepository
	Carts() CartRepository
	Orders() OrderRepository
	Reports() ReportRepository
}
