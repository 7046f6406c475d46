package billings

import (
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/formatter"
	"dentalclinic-service/internal/pkg/recordlist"
	"fmt"
)

const (
	ColumnPatient     = "patient"
	ColumnDescription = "description"
	ColumnAmount      = "amount"
	ColumnDate        = "date"
	ColumnStatus      = "status"
)

const BillingListTitle = "Billing"

func NewBillingScheme(f *formatter.Formatter, currencyLabel string) recordlist.Scheme[models.Billing] {
	amountHeader := "Amount"
	if currencyLabel != "" {
		amountHeader = fmt.Sprintf("Amount (%s)", currencyLabel)
	}

	return recordlist.Scheme[models.Billing]{
		Title: BillingListTitle,
		Columns: []recordlist.Column[models.Billing]{
			{Key: ColumnPatient, Header: "Patient", Value: func(b models.Billing) string { return b.Patient }},
			{Key: ColumnDescription, Header: "Description", Value: func(b models.Billing) string { return b.Description }},
			{Key: ColumnAmount, Header: amountHeader, Kind: recordlist.KindAmount, Value: func(b models.Billing) string { return f.Amount(b.Amount) }},
			{Key: ColumnDate, Header: "Date", Kind: recordlist.KindDate, Value: func(b models.Billing) string { return b.Date }},
			{Key: ColumnStatus, Header: "Status", Kind: recordlist.KindStatus, Value: func(b models.Billing) string { return formatter.PaymentStatus(b.Paid).Label }},
		},
		Key: func(b models.Billing) int { return b.ID },
		Status: func(b models.Billing) responses.RecordStatus {
			return formatter.PaymentStatus(b.Paid)
		},
	}
}
