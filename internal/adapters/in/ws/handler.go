// Package ws streams order lifecycle events to websocket clients. A client
// connects to /ws/orders, names the channels it wants via repeated `channel`
// query parameters (all channels when none are given), and receives one JSON
// message per event until it disconnects.
package ws

import (
	"fmt"
	"log/slog"
	"net/http"

	"eats/internal/adapters/out/eventbus"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventMessage is the wire form of one order event.
type EventMessage struct {
	Channel      string  `json:"channel"`
	OrderID      string  `json:"orderId"`
	RestaurantID string  `json:"restaurantId"`
	CustomerID   string  `json:"customerId"`
	DriverID     *string `json:"driverId,omitempty"`
	Status       string  `json:"status"`
	Total        int64   `json:"total"`
	OwnerID      string  `json:"ownerId,omitempty"`
}

// Handler bridges event bus subscriptions to websocket connections.
type Handler struct {
	bus    *eventbus.Bus
	logger *slog.Logger
}

// NewHandler creates the websocket handler over the given bus.
func NewHandler(bus *eventbus.Bus, logger *slog.Logger) *Handler {
	return &Handler{bus: bus, logger: logger}
}

// RegisterRoutes attaches the websocket endpoint to the echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/orders", h.StreamOrders)
}

// StreamOrders handles GET /ws/orders. An owner id in the X-User-Id header
// narrows addressed events (those carrying an OwnerID) to that owner; events
// without an addressee are delivered to everyone on the channel.
func (h *Handler) StreamOrders(ctx echo.Context) error {
	channels, err := requestedChannels(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var caller *kernel.UUID
	if raw := ctx.Request().Header.Get("X-User-Id"); raw != "" {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": idErr.Error()})
		}
		caller = &id
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return nil
	}

	sub := h.bus.Subscribe(channels...)

	// The read pump only detects the client going away.
	go func() {
		defer h.bus.Unsubscribe(sub)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	go h.writePump(conn, sub, caller)

	return nil
}

func (h *Handler) writePump(conn *websocket.Conn, sub *eventbus.Subscription, caller *kernel.UUID) {
	defer conn.Close()

	for event := range sub.Events() {
		if !addressedTo(event, caller) {
			continue
		}
		if err := conn.WriteJSON(messageFromEvent(event)); err != nil {
			h.logger.Warn("websocket write failed", "error", err)
			return
		}
	}
}

// addressedTo reports whether the event should reach this connection. Events
// carrying an OwnerID are addressed; others broadcast to the whole channel.
func addressedTo(event ports.OrderEvent, caller *kernel.UUID) bool {
	if event.OwnerID.Validate() != nil || caller == nil {
		return true
	}
	return event.OwnerID.IsEqual(*caller)
}

func requestedChannels(ctx echo.Context) ([]ports.EventChannel, error) {
	known := map[string]ports.EventChannel{
		string(ports.ChannelPendingOrder):  ports.ChannelPendingOrder,
		string(ports.ChannelCookedOrder):   ports.ChannelCookedOrder,
		string(ports.ChannelPickedUpOrder): ports.ChannelPickedUpOrder,
		string(ports.ChannelOrderUpdated):  ports.ChannelOrderUpdated,
		string(ports.ChannelOrderTaken):    ports.ChannelOrderTaken,
	}

	raw := ctx.QueryParams()["channel"]
	if len(raw) == 0 {
		return []ports.EventChannel{
			ports.ChannelPendingOrder,
			ports.ChannelCookedOrder,
			ports.ChannelPickedUpOrder,
			ports.ChannelOrderUpdated,
			ports.ChannelOrderTaken,
		}, nil
	}

	channels := make([]ports.EventChannel, 0, len(raw))
	for _, name := range raw {
		channel, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("unknown channel %q", name)
		}
		channels = append(channels, channel)
	}
	return channels, nil
}

func messageFromEvent(event ports.OrderEvent) EventMessage {
	msg := EventMessage{
		Channel:      string(event.Channel),
		OrderID:      event.Order.ID().String(),
		RestaurantID: event.Order.RestaurantID().String(),
		CustomerID:   event.Order.CustomerID().String(),
		Status:       event.Order.Status().String(),
		Total:        event.Order.Total(),
	}
	if driver := event.Order.Driver(); driver != nil {
		driverID := driver.String()
		msg.DriverID = &driverID
	}
	if event.OwnerID.Validate() == nil {
		msg.OwnerID = event.OwnerID.String()
	}
	return msg
}
