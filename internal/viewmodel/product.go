package viewmodel

import (
	"context"
	"strings"

	"github.com/stackboard/stackboard/internal/client"
	"github.com/stackboard/stackboard/internal/domain/product"
)

type ProductAPI interface {
	CreateProduct(ctx context.Context, req product.CreateProductRequest) (product.Product, error)
	ListProducts(ctx context.Context, q client.ProductQuery) ([]product.Product, error)
	ProductStockValue(ctx context.Context) (float64, error)
	UpdateProduct(ctx context.Context, id string, req product.UpdateProductRequest) (product.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ProductForm struct {
	ProductName string
	Price       float64
	Quantity    int
	Category    string
}

// ProductVM filters server-side, like ExpenseVM. StockValue is the
// unfiltered Σ price×quantity.
type ProductVM struct {
	api ProductAPI

	Form       ProductForm
	List       []product.Product
	EditID     string
	Errors     map[string]string
	Filter     client.ProductQuery
	StockValue float64
}

func NewProductVM(api ProductAPI) *ProductVM {
	return &ProductVM{api: api, Errors: map[string]string{}}
}

func (vm *ProductVM) Load(ctx context.Context) error {
	list, err := vm.api.ListProducts(ctx, vm.Filter)
	if err != nil {
		return err
	}
	value, err := vm.api.ProductStockValue(ctx)
	if err != nil {
		return err
	}
	vm.List = list
	vm.StockValue = value
	return nil
}

func (vm *ProductVM) SetFilter(ctx context.Context, q client.ProductQuery) error {
	prev := vm.Filter
	vm.Filter = q
	if err := vm.Load(ctx); err != nil {
		vm.Filter = prev
		return err
	}
	return nil
}

func (vm *ProductVM) validate() bool {
	vm.Errors = map[string]string{}
	if strings.TrimSpace(vm.Form.ProductName) == "" {
		vm.Errors["productName"] = "Product name is required"
	}
	if vm.Form.Price <= 0 {
		vm.Errors["price"] = "Price must be greater than zero"
	}
	if vm.Form.Quantity < 0 {
		vm.Errors["quantity"] = "Quantity cannot be negative"
	}
	if strings.TrimSpace(vm.Form.Category) == "" {
		vm.Errors["category"] = "Category is required"
	}
	return len(vm.Errors) == 0
}

func (vm *ProductVM) Submit(ctx context.Context) error {
	if !vm.validate() {
		return ErrInvalidForm
	}

	if vm.EditID == "" {
		qty := vm.Form.Quantity
		_, err := vm.api.CreateProduct(ctx, product.CreateProductRequest{
			ProductName: vm.Form.ProductName,
			Price:       vm.Form.Price,
			Quantity:    &qty,
			Category:    vm.Form.Category,
		})
		if err != nil {
			return vm.submitError(err)
		}
	} else {
		qty := vm.Form.Quantity
		_, err := vm.api.UpdateProduct(ctx, vm.EditID, product.UpdateProductRequest{
			ProductName: &vm.Form.ProductName,
			Price:       &vm.Form.Price,
			Quantity:    &qty,
			Category:    &vm.Form.Category,
		})
		if err != nil {
			return vm.submitError(err)
		}
	}

	vm.Form = ProductForm{}
	vm.EditID = ""
	return vm.Load(ctx)
}

func (vm *ProductVM) Edit(id string) {
	for _, p := range vm.List {
		if p.ID == id {
			vm.EditID = id
			vm.Form = ProductForm{
				ProductName: p.ProductName,
				Price:       p.Price,
				Quantity:    p.Quantity,
				Category:    p.Category,
			}
			return
		}
	}
}

func (vm *ProductVM) Delete(ctx context.Context, id string) error {
	if err := vm.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	if vm.EditID == id {
		vm.EditID = ""
		vm.Form = ProductForm{}
	}
	return vm.Load(ctx)
}

// submitError folds a server-side validation rejection into the Errors
// map so callers handle it like a local one.
func (vm *ProductVM) submitError(err error) error {
	if errs := serverFieldErrors(err); errs != nil {
		vm.Errors = errs
		return ErrInvalidForm
	}
	return err
}
