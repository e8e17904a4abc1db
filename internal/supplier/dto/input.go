package dto

type SupplierInput struct {
	Name    string
	Contact string
	Phone   string
	Email   string
}
