// Package router đăng ký các route thuộc domain catalog: mười facet và ba sub-facet.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/amritage/fabric-shop-backend/internal/api/catalog/handler"
	catalogmodels "github.com/amritage/fabric-shop-backend/internal/api/catalog/models"
	catalogsvc "github.com/amritage/fabric-shop-backend/internal/api/catalog/service"
	"github.com/amritage/fabric-shop-backend/internal/api/middleware"
	apirouter "github.com/amritage/fabric-shop-backend/internal/api/router"
	"github.com/amritage/fabric-shop-backend/internal/media"
)

// facetMount mô tả một facet: đường dẫn mount và khả năng nhận media
type facetMount struct {
	kind       catalogmodels.FacetKind
	prefix     string
	allowImage bool
	allowVideo bool
}

// registerFacetRoutes đăng ký 5 route CRUD chuẩn cho một facet handler
func registerFacetRoutes(api fiber.Router, prefix string, h *cataloghdl.FacetHandler, optionalAuth fiber.Handler) {
	mws := []fiber.Handler{optionalAuth}
	apirouter.RegisterRouteWithMiddleware(api, prefix, "POST", "/add", mws, h.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(api, prefix, "GET", "/view", mws, h.HandleList)
	apirouter.RegisterRouteWithMiddleware(api, prefix, "GET", "/view/:id", mws, h.HandleGetById)
	apirouter.RegisterRouteWithMiddleware(api, prefix, "PUT", "/update/:id", mws, h.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(api, prefix, "DELETE", "/delete/:id", mws, h.HandleDelete)
}

// Register trả về hàm đăng ký toàn bộ route catalog.
// Guard và media gateway được khởi tạo một lần lúc boot và inject vào đây.
func Register(guard *catalogsvc.IntegrityGuard, gw *media.Gateway) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		optionalAuth := middleware.OptionalAuthMiddleware()

		mounts := []facetMount{
			{catalogmodels.KindCategory, "/category", true, false},
			{catalogmodels.KindStructure, "/structure", false, false},
			{catalogmodels.KindContent, "/content", false, false},
			{catalogmodels.KindFinish, "/finish", false, false},
			{catalogmodels.KindDesign, "/design", false, false},
			{catalogmodels.KindColor, "/color", false, false},
			{catalogmodels.KindMotifsize, "/motifsize", false, false},
			{catalogmodels.KindSuitablefor, "/suitablefor", false, false},
			{catalogmodels.KindVendor, "/vendor", false, false},
			{catalogmodels.KindGroupCode, "/groupcode", true, true},
		}

		for _, m := range mounts {
			h, err := cataloghdl.NewFacetHandler(m.kind, guard, gw, m.allowImage, m.allowVideo)
			if err != nil {
				return fmt.Errorf("tạo FacetHandler %s: %w", m.kind, err)
			}
			registerFacetRoutes(api, m.prefix, h, optionalAuth)
		}

		subFinishHandler, err := cataloghdl.NewSubFinishHandler(guard)
		if err != nil {
			return fmt.Errorf("tạo SubFinishHandler: %w", err)
		}
		subStructureHandler, err := cataloghdl.NewSubStructureHandler(guard)
		if err != nil {
			return fmt.Errorf("tạo SubStructureHandler: %w", err)
		}
		subSuitableHandler, err := cataloghdl.NewSubSuitableHandler(guard)
		if err != nil {
			return fmt.Errorf("tạo SubSuitableHandler: %w", err)
		}

		mws := []fiber.Handler{optionalAuth}

		apirouter.RegisterRouteWithMiddleware(api, "/subfinish", "POST", "/add", mws, subFinishHandler.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(api, "/subfinish", "GET", "/view", mws, subFinishHandler.HandleList)
		apirouter.RegisterRouteWithMiddleware(api, "/subfinish", "GET", "/view/:id", mws, subFinishHandler.HandleGetById)
		apirouter.RegisterRouteWithMiddleware(api, "/subfinish", "PUT", "/update/:id", mws, subFinishHandler.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(api, "/subfinish", "DELETE", "/delete/:id", mws, subFinishHandler.HandleDelete)

		apirouter.RegisterRouteWithMiddleware(api, "/substructure", "POST", "/add", mws, subStructureHandler.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(api, "/substructure", "GET", "/view", mws, subStructureHandler.HandleList)
		apirouter.RegisterRouteWithMiddleware(api, "/substructure", "GET", "/view/:id", mws, subStructureHandler.HandleGetById)
		apirouter.RegisterRouteWithMiddleware(api, "/substructure", "PUT", "/update/:id", mws, subStructureHandler.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(api, "/substructure", "DELETE", "/delete/:id", mws, subStructureHandler.HandleDelete)

		apirouter.RegisterRouteWithMiddleware(api, "/subsuitable", "POST", "/add", mws, subSuitableHandler.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(api, "/subsuitable", "GET", "/view", mws, subSuitableHandler.HandleList)
		apirouter.RegisterRouteWithMiddleware(api, "/subsuitable", "GET", "/view/:id", mws, subSuitableHandler.HandleGetById)
		apirouter.RegisterRouteWithMiddleware(api, "/subsuitable", "PUT", "/update/:id", mws, subSuitableHandler.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(api, "/subsuitable", "DELETE", "/delete/:id", mws, subSuitableHandler.HandleDelete)

		return nil
	}
}
