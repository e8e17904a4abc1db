package server

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"testing"

	categoryH "github.com/fekuna/comics-store-service/internal/category/handler"
	customerH "github.com/fekuna/comics-store-service/internal/customer/handler"
	productH "github.com/fekuna/comics-store-service/internal/product/handler"
	purchaseH "github.com/fekuna/comics-store-service/internal/purchase/handler"
	supplierH "github.com/fekuna/comics-store-service/internal/supplier/handler"
	orderH "github.com/fekuna/comics-store-service/internal/supplierorder/handler"
	"github.com/fekuna/comics-store-service/internal/testutil"
	userH "github.com/fekuna/comics-store-service/internal/user/handler"
	userTypeH "github.com/fekuna/comics-store-service/internal/usertype/handler"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p *fakePinger) PingContext(context.Context) error {
	return p.err
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := &fakePinger{}
	r := NewRouter(logger.NewNop(), db)

	w := testutil.DoRequest(r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	db.err = errors.New("connection refused")
	w = testutil.DoRequest(r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resp := testutil.NewResponder(t)
	log := logger.NewNop()

	r := NewRouter(log, &fakePinger{},
		userH.NewUserHandler(nil, resp, log),
		userTypeH.NewUserTypeHandler(nil, resp, log),
		categoryH.NewCategoryHandler(nil, resp, log),
		productH.NewProductHandler(nil, resp, log),
		supplierH.NewSupplierHandler(nil, resp, log),
		orderH.NewSupplierOrderHandler(nil, resp, log),
		customerH.NewCustomerHandler(nil, resp, log),
		purchaseH.NewPurchaseHandler(nil, resp, log),
	)

	got := map[string]bool{}
	for _, route := range r.Routes() {
		got[route.Method+" "+route.Path] = true
	}

	crud := []struct{ plural, singular string }{
		{"usuarios", "usuario"},
		{"tipos_usuario", "tipo_usuario"},
		{"productos", "producto"},
		{"categorias", "categoria"},
		{"proveedores", "proveedor"},
		{"pedidos_proveedor", "pedido_proveedor"},
		{"clientes", "cliente"},
		{"detalles_compra", "detalle_compra"},
	}
	want := []string{
		"GET /healthz",
		"GET /productos/buscar",
		"GET /productos/categoria/:id",
		"GET /proveedores/buscar",
		"GET /pedidos_proveedor/proveedor/:nombre",
		"GET /clientes/:id/compras",
	}
	for _, e := range crud {
		want = append(want,
			"GET /"+e.plural,
			"GET /"+e.singular+"/buscar/:id",
			"POST /"+e.plural+"/agregar",
			"PUT /"+e.plural+"/actualizar/:id",
			"DELETE /"+e.plural+"/borrar/:id",
		)
	}

	var missing []string
	for _, w := range want {
		if !got[w] {
			missing = append(missing, w)
		}
	}
	sort.Strings(missing)
	assert.Empty(t, missing)
	assert.Len(t, got, len(want))
}

func TestUnknownRouteIs404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(logger.NewNop(), &fakePinger{})

	w := testutil.DoRequest(r, http.MethodGet, "/nada", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
