package model

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// Order заказ, присланный из Mini App. Все поля необязательные и могут прийти
// любого типа, значения по умолчанию подставляются при отображении.
type Order struct {
	Ref          string      `json:"-"`
	User         OrderUser   `json:"user"`
	Items        []OrderItem `json:"items"`
	Total        Number      `json:"total"`
	Delivery     Text        `json:"delivery"`
	Payment      Text        `json:"payment"`
	ContactName  Text        `json:"contactName"`
	ContactPhone Text        `json:"contactPhone"`
	Comment      Text        `json:"comment"`
}

type OrderUser struct {
	ID        Text `json:"id"`
	Username  Text `json:"username"`
	FirstName Text `json:"first_name"`
}

// UnmarshalJSON считает пользователя пустым, если пришел не объект
func (u *OrderUser) UnmarshalJSON(data []byte) error {
	type plain OrderUser
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*u = OrderUser{}
		return nil
	}
	*u = OrderUser(p)
	return nil
}

type OrderItem struct {
	Name  Text   `json:"name"`
	Qty   Number `json:"qty"`
	Price Number `json:"price"`
}

// UnmarshalJSON превращает позицию, которая не является объектом, в пустую
func (i *OrderItem) UnmarshalJSON(data []byte) error {
	type plain OrderItem
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*i = OrderItem{}
		return nil
	}
	*i = OrderItem(p)
	return nil
}

// Quantity возвращает количество, пустое или нулевое считается за 1
func (i OrderItem) Quantity() float64 {
	return i.Qty.Or(1)
}

// LineTotal стоимость позиции
func (i OrderItem) LineTotal() float64 {
	return i.Price.Or(0) * i.Quantity()
}

// GenerateRef присваивает заказу короткий номер, если он еще не установлен
func (o *Order) GenerateRef() {
	if o.Ref == "" {
		o.Ref = strings.ToUpper(uuid.New().String()[:8])
	}
}
