package billing

import (
	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		Address:            c.Address,
		TotalPurchases:     c.TotalPurchases,
		OutstandingBalance: c.OutstandingBalance,
		CreatedAt:          c.CreatedAt.Format(dateLayout),
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			Name:     it.Name,
			Size:     it.Size,
			Quantity: it.Quantity,
			Rate:     it.Rate,
			Amount:   it.Amount,
		})
	}
	return &dto.SaleResponse{
		ID:                s.ID,
		Date:              s.Date.Format(dateLayout),
		CustomerID:        s.CustomerID,
		CustomerName:      s.CustomerName,
		CustomerEmail:     s.CustomerEmail,
		Items:             items,
		Subtotal:          s.Subtotal,
		Transport:         s.Transport,
		Total:             s.Total,
		PaidAmount:        s.PaidAmount,
		OutstandingAmount: s.OutstandingAmount,
		Status:            s.Status,
	}
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:            p.ID,
		CustomerID:    p.CustomerID,
		CustomerName:  p.CustomerName,
		InvoiceID:     p.InvoiceID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		Date:          p.Date.Format(dateLayout),
		Notes:         p.Notes,
	}
}
