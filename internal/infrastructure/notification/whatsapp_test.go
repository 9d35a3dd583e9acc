package notification

import (
	"net/url"
	"strings"
	"testing"

	"github.com/byserkan/backend/internal/domain/cart"
	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/byserkan/backend/internal/domain/ordering"
	"github.com/byserkan/backend/internal/domain/schedule"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T, deliveryType schedule.ServiceType) *ordering.Order {
	c := cart.New()
	c.AddItem(cart.ItemSnapshot{
		ID:     uuid.New(),
		Number: 1,
		Name:   "Döner Kebab",
		Price:  decimal.RequireFromString("7.50"),
	}, cart.ItemSelections{
		SelectedSauce:  "Hähnchen - Zaziki",
		SelectedExtras: []string{"Käse", "Jalapeños"},
	})
	c.AddItem(cart.ItemSnapshot{
		ID:     uuid.New(),
		Number: 30,
		Name:   "Pizza Margherita",
		Price:  decimal.RequireFromString("9.00"),
	}, cart.ItemSelections{
		SelectedSize: &catalog.ItemSize{
			Name:        "Groß",
			Price:       decimal.RequireFromString("11.00"),
			Description: "ca. 32cm",
		},
	})

	fee := decimal.Zero
	zone := ""
	address := ""
	if deliveryType == schedule.ServiceDelivery {
		fee = decimal.RequireFromString("1.50")
		zone = "Innenstadt"
		address = "Hauptstraße 12, 46045"
	}

	order, err := ordering.NewOrder(ordering.NewOrderParams{
		CustomerName:    "Max Mustermann",
		CustomerAddress: address,
		CustomerPhone:   "01761234567",
		Note:            "Bitte klingeln",
		Lines:           c.Lines,
		Subtotal:        c.Subtotal(),
		DeliveryFee:     fee,
		DeliveryType:    deliveryType,
		DeliveryZone:    zone,
	})
	require.NoError(t, err)
	return order
}

func TestOrderMessage(t *testing.T) {
	t.Run("delivery order carries address, zone and fee", func(t *testing.T) {
		msg := OrderMessage(testOrder(t, schedule.ServiceDelivery))

		assert.Contains(t, msg, "*Neue Bestellung - bySerkan.de*")
		assert.Contains(t, msg, "👤 *Kunde:* Max Mustermann")
		assert.Contains(t, msg, "📦 *Art:* Lieferung")
		assert.Contains(t, msg, "📍 *Adresse:* Hauptstraße 12, 46045")
		assert.Contains(t, msg, "🗺️ *Gebiet:* Innenstadt")
		assert.Contains(t, msg, "⏰ *Zeit:* So schnell wie möglich")
		assert.Contains(t, msg, "🚗 *Liefergebühr:* 1,50 €")
		assert.Contains(t, msg, "📝 *Anmerkung:* Bitte klingeln")
	})

	t.Run("pickup order omits delivery details", func(t *testing.T) {
		msg := OrderMessage(testOrder(t, schedule.ServicePickup))

		assert.Contains(t, msg, "📦 *Art:* Abholung")
		assert.NotContains(t, msg, "Adresse")
		assert.NotContains(t, msg, "Liefergebühr")
	})

	t.Run("lines carry modifiers and German prices", func(t *testing.T) {
		msg := OrderMessage(testOrder(t, schedule.ServicePickup))

		// base 7.50 plus two extras at 1.00 each
		assert.Contains(t, msg, "• 1x Nr. 1 Döner Kebab - Soße: Hähnchen - Zaziki - Extras: Käse, Jalapeños (+2,00€) = 9,50 €")
		// the size price replaces the base price
		assert.Contains(t, msg, "• 1x Nr. 30 Pizza Margherita (Groß - ca. 32cm) = 11,00 €")
		assert.Contains(t, msg, "💰 *Zwischensumme:* 20,50 €")
		assert.Contains(t, msg, "💳 *Gesamtbetrag:* 20,50 €")
	})

	t.Run("specific requested time is rendered with Uhr", func(t *testing.T) {
		order := testOrder(t, schedule.ServicePickup)
		order.RequestedTime = "18:30"

		msg := OrderMessage(order)
		assert.Contains(t, msg, "⏰ *Zeit:* Um 18:30 Uhr")
	})
}

func TestWhatsAppLink_ForOrder(t *testing.T) {
	link := NewWhatsAppLink("4915771459166").ForOrder(testOrder(t, schedule.ServicePickup))

	assert.True(t, strings.HasPrefix(link, "https://wa.me/4915771459166?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Neue Bestellung - bySerkan.de")
	assert.Contains(t, text, "Max Mustermann")
}
