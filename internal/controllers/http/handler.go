package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tableside/internal/domain"
	"tableside/internal/services"
)

const (
	menuCacheKey    = "menu-items:all"
	menuCacheTTL    = 30 * time.Second
	serviceCacheKey = "service:pending"
	serviceCacheTTL = 5 * time.Second
)

type Handler struct {
	menu   *services.MenuService
	orders *services.OrderService
	rdb    *redis.Client
	logger *zap.Logger
}

func NewHandler(menu *services.MenuService, orders *services.OrderService, rdb *redis.Client, logger *zap.Logger) *Handler {
	return &Handler{menu: menu, orders: orders, rdb: rdb, logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/menu-items", h.ListMenuItems)
	r.POST("/menu-items", h.CreateMenuItem)
	r.GET("/menu-items/:id", h.GetMenuItem)
	r.PUT("/menu-items/:id", h.UpdateMenuItem)
	r.DELETE("/menu-items/:id", h.DeleteMenuItem)

	r.GET("/orders", h.ListOrders)
	r.POST("/orders", h.CreateOrder)
	r.GET("/orders/:id", h.GetOrder)
	r.PUT("/orders/:id", h.UpdateOrder)
	r.DELETE("/orders/:id", h.DeleteOrder)
	r.POST("/orders/:id/items", h.AppendOrderItems)
	r.GET("/orders/:id/item", h.GetOrderItems)
	r.POST("/orders/item", h.CreateOrderItem)
	r.DELETE("/orders/item", h.DeleteOrderItem)

	r.GET("/service", h.PendingService)
}

func (h *Handler) ListMenuItems(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if b, err := h.rdb.Get(ctx, menuCacheKey).Result(); err == nil {
			var items []domain.MenuItem
			if json.Unmarshal([]byte(b), &items) == nil {
				respond(c, http.StatusOK, items, "Menu items fetched successfully")
				return
			}
		}
	}

	items, err := h.menu.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(items); err == nil {
			h.rdb.Set(ctx, menuCacheKey, data, menuCacheTTL)
		}
	}
	respond(c, http.StatusOK, items, "Menu items fetched successfully")
}

func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}

	item, err := h.menu.Create(c.Request.Context(), services.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.invalidate(menuCacheKey)
	respond(c, http.StatusCreated, item, "Menu item created successfully")
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	item, err := h.menu.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, item, "Menu item fetched successfully")
}

func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}

	item, err := h.menu.Update(c.Request.Context(), id, services.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.invalidate(menuCacheKey)
	respond(c, http.StatusOK, item, "Menu item updated successfully")
}

func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.menu.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.invalidate(menuCacheKey)
	respond(c, http.StatusOK, nil, "Menu item deleted successfully")
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, orders, "Orders fetched successfully")
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), services.CreateOrderInput{
		TableID:     req.TableID,
		TableNumber: req.TableNumber,
		Items:       toItemInputs(req.Items),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.invalidate(serviceCacheKey)
	respond(c, http.StatusCreated, order, "Order created successfully")
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, order, "Order fetched successfully")
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, status, req.PaymentMethod)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.invalidate(serviceCacheKey)
	respond(c, http.StatusOK, order, "Order updated successfully")
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.invalidate(serviceCacheKey)
	respond(c, http.StatusOK, nil, "Order deleted successfully")
}

func (h *Handler) AppendOrderItems(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req AppendItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}

	order, err := h.orders.AppendItems(c.Request.Context(), id, toItemInputs(req.Items))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.invalidate(serviceCacheKey)
	respond(c, http.StatusOK, order, "Items added to order successfully")
}

func (h *Handler) GetOrderItems(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	view, err := h.orders.GroupedItems(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, view, "Items fetched successfully")
}

func (h *Handler) CreateOrderItem(c *gin.Context) {
	var req CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}

	item, err := h.orders.AddItem(c.Request.Context(), req.OrderID, services.OrderItemInput{
		MenuItemID: req.MenuItemID,
		Quantity:   req.Quantity,
		Price:      req.Price,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.invalidate(serviceCacheKey)
	respond(c, http.StatusCreated, item, "Order item successfully created")
}

func (h *Handler) DeleteOrderItem(c *gin.Context) {
	var req DeleteOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}
	if err := h.orders.RemoveItem(c.Request.Context(), req.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.invalidate(serviceCacheKey)
	respond(c, http.StatusOK, nil, "Order item successfully deleted")
}

func (h *Handler) PendingService(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if b, err := h.rdb.Get(ctx, serviceCacheKey).Result(); err == nil {
			var view []services.ServiceOrderView
			if json.Unmarshal([]byte(b), &view) == nil {
				respond(c, http.StatusOK, view, "Fetched pending items successfully")
				return
			}
		}
	}

	view, err := h.orders.PendingServiceView(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(view); err == nil {
			h.rdb.Set(ctx, serviceCacheKey, data, serviceCacheTTL)
		}
	}
	respond(c, http.StatusOK, view, "Fetched pending items successfully")
}

func (h *Handler) pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) invalidate(key string) {
	if h.rdb == nil {
		return
	}
	h.rdb.Del(context.Background(), key)
}

func toItemInputs(reqs []OrderItemRequest) []services.OrderItemInput {
	items := make([]services.OrderItemInput, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, services.OrderItemInput{
			MenuItemID: r.MenuItemID,
			Quantity:   r.Quantity,
			Price:      r.Price,
		})
	}
	return items
}
