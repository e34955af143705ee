package model

import "time"

type Category string

const (
	CategoryBook     Category = "Book"
	CategoryMagazine Category = "Magazine"
	CategoryNovel    Category = "Novel"
)

// ValidCategory reports whether c is one of the known catalog categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryBook, CategoryMagazine, CategoryNovel:
		return true
	}
	return false
}

type Product struct {
	ID            string   `bson:"id" json:"id"`
	Title         string   `bson:"title" json:"title"`
	Description   string   `bson:"description" json:"description"`
	OriginalPrice float64  `bson:"original_price" json:"original_price"`
	SalePrice     *float64 `bson:"sale_price,omitempty" json:"sale_price,omitempty"`
	ImageURL      string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Category      Category `bson:"category" json:"category"`
	Stock         int      `bson:"stock" json:"stock"`
}

// EffectivePrice is the price a buyer pays right now: the sale price when one
// is set, the original price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.OriginalPrice
}

// CartItem is one (user, product) row of a cart. Quantity is always >= 1; a
// quantity driven to zero deletes the row instead.
type CartItem struct {
	UserID    string `bson:"user_id" json:"userId"`
	ProductID string `bson:"product_id" json:"productId"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

type ShippingAddress struct {
	FullName     string `bson:"full_name" json:"full_name"`
	Address      string `bson:"address" json:"address"`
	City         string `bson:"city" json:"city"`
	State        string `bson:"state" json:"state"`
	PostalCode   string `bson:"postal_code" json:"postal_code"`
	MobileNumber string `bson:"mobile_number" json:"mobile_number"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderProduct is a frozen order line: title and price are copied from the
// catalog at checkout time and never follow later product edits.
type OrderProduct struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Title     string  `bson:"title" json:"title"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

const PaymentModeCOD = "Cash on Delivery"

// Order is immutable after creation except for Status.
type Order struct {
	ID              string          `bson:"id" json:"id"`
	UserID          string          `bson:"user_id" json:"user_id"`
	Products        []OrderProduct  `bson:"products" json:"products"`
	TotalAmount     float64         `bson:"total_amount" json:"total_amount"`
	ShippingAddress ShippingAddress `bson:"shipping_address" json:"shipping_address"`
	PaymentMode     string          `bson:"payment_mode" json:"payment_mode"`
	Status          OrderStatus     `bson:"status" json:"status"`
	OrderDate       time.Time       `bson:"order_date" json:"order_date"`
}

type User struct {
	ID           string `bson:"id" json:"id"`
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email,omitempty" json:"email,omitempty"`
	MobileNumber string `bson:"mobile_number,omitempty" json:"mobile_number,omitempty"`
	Password     string `bson:"password" json:"-"`
	Role         string `bson:"role" json:"role"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type ContactMessage struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Message     string    `bson:"message" json:"message"`
	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
}
