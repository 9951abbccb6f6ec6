package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/shopworks/storefront/internal/domain/model"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
	"github.com/shopworks/storefront/internal/server/http/dto"
)

func userResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Type:          string(user.Type),
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}

func authResponse(user *model.User, pair pkgAuth.TokenPair) dto.AuthResponse {
	return dto.AuthResponse{
		User: userResponse(user),
		Tokens: dto.TokenResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		},
	}
}

func clientResponse(client *model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        client.ID,
		UserID:    client.UserID,
		FullName:  client.FullName,
		Contact:   client.Contact,
		Address:   client.Address,
		CreatedAt: client.CreatedAt,
	}
}

func productResponse(product *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
	}
}

func cartResponse(items []model.CartItem, total decimal.Decimal) dto.CartResponse {
	resp := dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items)), Total: total}
	for _, item := range items {
		line := dto.CartItemResponse{ID: item.ID, Quantity: item.Quantity, Subtotal: decimal.Zero}
		if item.Product != nil {
			product := productResponse(item.Product)
			line.Product = &product
			line.Subtotal = item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		}
		resp.Items = append(resp.Items, line)
	}
	return resp
}

func orderResponse(order *model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:        order.ID,
		ClientID:  order.ClientID,
		Status:    string(order.Status),
		Total:     order.Total,
		Items:     make([]dto.OrderItemResponse, 0, len(order.Items)),
		OrderDate: order.OrderDate,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}
	return resp
}

func reportResponse(report *model.Report) dto.ReportResponse {
	return dto.ReportResponse{
		ID:          report.ID,
		StartDate:   report.StartDate,
		EndDate:     report.EndDate,
		ProductName: report.ProductName,
		ClientType:  report.ClientType,
		Status:      string(report.Status),
		FileName:    report.FileName,
		ObjectKey:   report.ObjectKey,
		TotalSales:  report.TotalSales,
		TotalOrders: report.TotalOrders,
		CreatedAt:   report.CreatedAt,
	}
}
