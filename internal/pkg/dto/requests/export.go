package requests

type ExportRecords struct {
	Format string `validate:"required,oneof=csv json text"`
}
