package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

func TestNamedURL(t *testing.T) {
	r := New()
	r.Get("/products/{id}", "products.show", ok)

	url, err := r.URL("products.show", map[string]string{"id": "42"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/products/42" {
		t.Fatalf("got %q", url)
	}

	if _, err := r.URL("products.show", nil); err == nil {
		t.Fatal("expected error for missing params")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Fatal("expected error for unknown route")
	}
}

func TestGroupNesting(t *testing.T) {
	r := New()
	api := r.Group("/api")
	v1 := api.Group("/cart")
	v1.Delete("/{productId}", "cart.remove", ok)

	path, found := r.Path("cart.remove")
	if !found {
		t.Fatal("route not registered")
	}
	if path != "/api/cart/{productId}" {
		t.Fatalf("got %q", path)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/abc", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestGroupMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	g := r.Group("/api", mw("outer"))
	g.Get("/x", "", ok, mw("inner"))

	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	r.Handler().ServeHTTP(httptest.NewRecorder(), req)

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Fatalf("order %v", order)
	}
}

func TestRoutesListing(t *testing.T) {
	r := New()
	r.Post("/b", "b", ok)
	r.Get("/a", "a", ok)

	routes := r.Routes()
	if len(routes) != 2 {
		t.Fatalf("got %d routes", len(routes))
	}
	if routes[0].Path != "/a" || routes[0].Method != http.MethodGet {
		t.Fatalf("unexpected first route %+v", routes[0])
	}
}
