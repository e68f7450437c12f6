package bot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ivanoskov/shop_bot/internal/model"
)

const notSpecified = "не указано"

var errOrderNotObject = errors.New("order payload must be a JSON object")

// ParseOrder разбирает JSON заказа из Mini App. Ошибкой считаются только
// синтаксис JSON, payload не объектом и items не массивом.
func ParseOrder(data string) (*model.Order, error) {
	trimmed := bytes.TrimSpace([]byte(data))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errOrderNotObject
	}

	var order model.Order
	if err := json.Unmarshal(trimmed, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FormatOrder собирает текст уведомления о заказе
func FormatOrder(order *model.Order) string {
	var sb strings.Builder

	sb.WriteString("Новый заказ!")
	if order.Ref != "" {
		sb.WriteString(" #" + order.Ref)
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "От: @%s (%s)\n",
		order.User.Username.Or("no_username"),
		order.User.FirstName.Or("без имени"))
	fmt.Fprintf(&sb, "ID: %s\n\n", order.User.ID.Or("не указан"))

	for _, item := range order.Items {
		fmt.Fprintf(&sb, "• %s x%s — %s ₽\n",
			item.Name, formatAmount(item.Quantity()), formatAmount(item.LineTotal()))
	}
	if len(order.Items) > 0 {
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Итого: %s ₽\n\n", formatAmount(order.Total.Or(0)))
	fmt.Fprintf(&sb, "Доставка: %s\n", order.Delivery.Or(notSpecified))
	fmt.Fprintf(&sb, "Оплата: %s\n", order.Payment.Or(notSpecified))
	fmt.Fprintf(&sb, "Имя: %s\n", order.ContactName.Or(notSpecified))
	fmt.Fprintf(&sb, "Телефон: %s\n", order.ContactPhone.Or(notSpecified))
	fmt.Fprintf(&sb, "Комментарий: %s", order.Comment.Or("—"))

	return sb.String()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
