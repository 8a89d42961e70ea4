package app

import (
	"testing"

	"storefront/pkg/config"
	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Latency.Auth = 0
	cfg.Latency.Checkout = 0
	return cfg
}

func TestNew(t *testing.T) {
	t.Run("FailsOnUnknownBackend", func(t *testing.T) {
		cfg := testConfig()
		cfg.Store.Backend = "punchcards"
		_, err := New(cfg)
		require.Error(t, err)
	})

	t.Run("SeedsEmptyCatalogOnce", func(t *testing.T) {
		cfg := testConfig()
		cfg.Store.Backend = config.BackendFile
		cfg.Store.Dir = t.TempDir()
		cfg.Seed = []config.SeedProduct{
			{Name: "Watch", Price: 120, Description: "A classic watch", Category: "Fashion"},
			{Name: "Ring", Price: 300, Description: "A gold ring", Category: "Fashion"},
		}

		a, err := New(cfg)
		require.NoError(t, err)
		products, err := a.Catalog.ListProducts()
		require.NoError(t, err)
		require.Len(t, products, 2)

		// A second start against the same store must not duplicate the seed.
		a, err = New(cfg)
		require.NoError(t, err)
		products, err = a.Catalog.ListProducts()
		require.NoError(t, err)
		require.Len(t, products, 2)
	})
}

func TestShoppingFlow(t *testing.T) {
	a, err := New(testConfig())
	require.NoError(t, err)
	defer a.Close()

	var placed []service.Event
	a.Dispatcher.Subscribe("OrderPlaced", func(e service.Event) error {
		placed = append(placed, e)
		return nil
	})

	identity, err := a.Session.Login("ana@example.com", "secret")
	require.NoError(t, err)
	require.False(t, identity.IsPrivileged())

	watch, err := a.Catalog.CreateProduct(service.ProductDraft{
		Name:        "Watch",
		Price:       decimal.NewFromInt(120),
		Description: "A classic watch",
		Category:    "Fashion",
	})
	require.NoError(t, err)

	_, err = a.Cart.AddProduct(watch)
	require.NoError(t, err)
	_, err = a.Cart.AddProduct(watch)
	require.NoError(t, err)

	order, err := a.Checkout.PlaceOrder()
	require.NoError(t, err)
	require.True(t, order.Total.Equal(decimal.NewFromInt(240)))
	require.Equal(t, identity.ID, order.UserID)
	require.Equal(t, model.OrderProcessing, order.Status)

	count, err := a.Cart.ItemCount()
	require.NoError(t, err)
	require.Equal(t, 0, count)

	require.Len(t, placed, 1)
}

func TestRequestReviewFlow(t *testing.T) {
	a, err := New(testConfig())
	require.NoError(t, err)
	defer a.Close()

	customer, err := a.Session.Login("ana@example.com", "secret")
	require.NoError(t, err)

	request, err := a.Requests.SubmitRequest(service.RequestDraft{
		UserID:      customer.ID,
		ProductName: "Ceramic Teapot",
		StoreName:   "Tokyo Hands",
		Description: "The blue one",
		Quantity:    "1",
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, request.Status)

	admin, err := a.Session.Login("admin@luxe.com", "secret")
	require.NoError(t, err)
	require.True(t, admin.IsPrivileged())

	reviewed, err := a.Requests.ReviewRequest(request.ID, model.StatusApproved, "On it", admin.Email)
	require.NoError(t, err)
	require.Equal(t, model.StatusApproved, reviewed.Status)

	stats, err := a.Requests.Stats()
	require.NoError(t, err)
	require.Equal(t, 1, stats.Total)
	require.Equal(t, 1, stats.Approved)
}
