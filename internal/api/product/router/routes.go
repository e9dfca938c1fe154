// Package router đăng ký các route thuộc domain product.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	producthdl "github.com/amritage/fabric-shop-backend/internal/api/product/handler"
	"github.com/amritage/fabric-shop-backend/internal/api/middleware"
	apirouter "github.com/amritage/fabric-shop-backend/internal/api/router"
	"github.com/amritage/fabric-shop-backend/internal/media"
)

// Register trả về hàm đăng ký toàn bộ route /product.
// Media gateway được khởi tạo một lần lúc boot và inject vào đây.
func Register(gw *media.Gateway) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		h, err := producthdl.NewProductHandler(gw)
		if err != nil {
			return fmt.Errorf("tạo ProductHandler: %w", err)
		}

		mws := []fiber.Handler{middleware.OptionalAuthMiddleware()}
		reg := func(method, path string, handler fiber.Handler) {
			apirouter.RegisterRouteWithMiddleware(api, "/product", method, path, mws, handler)
		}

		reg("POST", "/add", h.HandleAdd)
		reg("PUT", "/update/:id", h.HandleUpdate)
		reg("GET", "/view", h.HandleList)
		reg("GET", "/view/:id", h.HandleGetById)
		reg("DELETE", "/delete/:id", h.HandleDelete)
		reg("GET", "/search/:q", h.HandleSearch)

		// Lọc exact-match theo từng facet
		reg("GET", "/groupcode/:id", h.HandleByFacet("groupcodeId"))
		reg("GET", "/category/:id", h.HandleByFacet("newCategoryId"))
		reg("GET", "/structure/:id", h.HandleByFacet("structureId"))
		reg("GET", "/content/:id", h.HandleByFacet("contentId"))
		reg("GET", "/finish/:id", h.HandleByFacet("finishId"))
		reg("GET", "/design/:id", h.HandleByFacet("designId"))
		reg("GET", "/color/:id", h.HandleByFacet("colorId"))
		reg("GET", "/motif/:id", h.HandleByFacet("motifsizeId"))
		reg("GET", "/suitable/:id", h.HandleByFacet("suitableforId"))
		reg("GET", "/vendor/:id", h.HandleByFacet("vendorId"))

		// Lọc theo dải ±15% của các trường số
		reg("GET", "/gsm/upto/:value", h.HandleByRange("gsm"))
		reg("GET", "/oz/upto/:value", h.HandleByRange("oz"))
		reg("GET", "/inch/upto/:value", h.HandleByRange("inch"))
		reg("GET", "/cm/upto/:value", h.HandleByRange("cm"))
		reg("GET", "/price/upto/:value", h.HandleByRange("salesPrice"))
		reg("GET", "/quantity/upto/:value", h.HandleByRange("quantity"))
		reg("GET", "/purchaseprice/upto/:value", h.HandleByRange("purchasePrice"))

		// Cờ hiển thị
		reg("GET", "/popular", h.HandleByFlag("popularproduct"))
		reg("GET", "/offers", h.HandleByFlag("productoffer"))
		reg("GET", "/toprated", h.HandleByFlag("topratedproduct"))

		reg("GET", "/slug/:slug", h.HandleBySlug)
		reg("GET", "/identifier/:identifier", h.HandleByIdentifier)

		return nil
	}
}
