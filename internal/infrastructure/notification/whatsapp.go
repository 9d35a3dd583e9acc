package notification

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/byserkan/backend/internal/domain/cart"
	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/byserkan/backend/internal/domain/ordering"
	"github.com/byserkan/backend/internal/domain/schedule"
	"github.com/byserkan/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// WhatsAppLink builds the wa.me deep link customers open to hand their
// order to the store chat. The message is a deterministic German order
// summary so staff can read it at a glance.
type WhatsAppLink struct {
	phoneNumber string
}

// NewWhatsAppLink creates a link builder for the store's WhatsApp number.
// The number is expected in international format without the leading +.
func NewWhatsAppLink(phoneNumber string) *WhatsAppLink {
	return &WhatsAppLink{phoneNumber: phoneNumber}
}

// ForOrder returns the full wa.me URL with the encoded order summary
func (w *WhatsAppLink) ForOrder(order *ordering.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", w.phoneNumber, url.QueryEscape(OrderMessage(order)))
}

// OrderMessage renders the plain-text German order summary
func OrderMessage(order *ordering.Order) string {
	var b strings.Builder

	b.WriteString("🍕 *Neue Bestellung - bySerkan.de*\n\n")
	fmt.Fprintf(&b, "👤 *Kunde:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📞 *Telefon:* %s\n", order.CustomerPhone)

	if order.DeliveryType == schedule.ServiceDelivery {
		b.WriteString("📦 *Art:* Lieferung\n")
		if order.CustomerAddress != "" {
			fmt.Fprintf(&b, "📍 *Adresse:* %s\n", order.CustomerAddress)
		}
		if order.DeliveryZone != "" {
			fmt.Fprintf(&b, "🗺️ *Gebiet:* %s\n", order.DeliveryZone)
		}
	} else {
		b.WriteString("📦 *Art:* Abholung\n")
	}

	if order.RequestedTime == ordering.RequestedASAP {
		b.WriteString("⏰ *Zeit:* So schnell wie möglich\n\n")
	} else {
		fmt.Fprintf(&b, "⏰ *Zeit:* Um %s Uhr\n\n", order.RequestedTime)
	}

	b.WriteString("🛒 *Bestellung:*\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "• %s\n", lineText(line))
	}

	fmt.Fprintf(&b, "\n💰 *Zwischensumme:* %s\n", euro(order.Subtotal))
	if order.DeliveryFee.IsPositive() {
		fmt.Fprintf(&b, "🚗 *Liefergebühr:* %s\n", euro(order.DeliveryFee))
	}
	fmt.Fprintf(&b, "💳 *Gesamtbetrag:* %s\n", euro(order.TotalAmount))

	if order.Note != "" {
		fmt.Fprintf(&b, "\n📝 *Anmerkung:* %s", order.Note)
	}

	return b.String()
}

// lineText renders one cart line with every chosen modifier
func lineText(line cart.Line) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%dx Nr. %d %s", line.Quantity, line.Item.Number, line.Item.Name)

	if line.SelectedSize != nil {
		if line.SelectedSize.Description != "" {
			fmt.Fprintf(&b, " (%s - %s)", line.SelectedSize.Name, line.SelectedSize.Description)
		} else {
			fmt.Fprintf(&b, " (%s)", line.SelectedSize.Name)
		}
	}
	if line.SelectedPastaType != "" {
		fmt.Fprintf(&b, " - Nudelsorte: %s", line.SelectedPastaType)
	}
	if line.SelectedSauce != "" {
		fmt.Fprintf(&b, " - Soße: %s", line.SelectedSauce)
	}
	if len(line.SelectedExclusions) > 0 {
		fmt.Fprintf(&b, " - Salat: %s", strings.Join(line.SelectedExclusions, ", "))
	}
	if line.SelectedSideDish != "" {
		fmt.Fprintf(&b, " - Beilage: %s", line.SelectedSideDish)
	}
	if line.SelectedDrink != "" {
		fmt.Fprintf(&b, " - Getränk: %s", line.SelectedDrink)
	}
	if len(line.SelectedIngredients) > 0 {
		fmt.Fprintf(&b, " - Zutaten: %s", strings.Join(line.SelectedIngredients, ", "))
	}
	if len(line.SelectedExtras) > 0 {
		surcharge := catalog.ExtraSurcharge.Mul(decimal.NewFromInt(int64(len(line.SelectedExtras))))
		fmt.Fprintf(&b, " - Extras: %s (+%s€)",
			strings.Join(line.SelectedExtras, ", "),
			german(surcharge))
	}

	lineTotal := line.LinePrice().Mul(decimal.NewFromInt(int64(line.Quantity)))
	fmt.Fprintf(&b, " = %s €", german(lineTotal))

	return b.String()
}

func euro(amount decimal.Decimal) string {
	return valueobject.NewMoneyEUR(amount).FormatGerman()
}

// german formats a decimal with two places and a comma separator
func german(amount decimal.Decimal) string {
	return strings.ReplaceAll(amount.StringFixed(2), ".", ",")
}
