package billings

import (
	"context"
	"dentalclinic-service/internal/app/models"
)

type billingMemoryRepository struct{}

// NewBillingMemoryRepository serves the fixed statement list of the owner
// dashboard. Every call builds a new slice so callers never share state.
func NewBillingMemoryRepository() BillingRepository {
	return &billingMemoryRepository{}
}

func (r *billingMemoryRepository) FindAll(ctx context.Context) ([]models.Billing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sampleBillings(), nil
}

func sampleBillings() []models.Billing {
	return []models.Billing{
		{ID: 1, Patient: "John Doe", Description: "Root Canal Treatment", Amount: 15000, Date: "2025-01-15", Paid: false},
		{ID: 2, Patient: "Jane Smith", Description: "Teeth Whitening", Amount: 8000, Date: "2025-01-10", Paid: true},
	}
}
