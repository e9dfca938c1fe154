// Package cataloghdl - handler CRUD cho các sub-facet của catalog.
package cataloghdl

import (
	"fmt"

	basehdl "github.com/amritage/fabric-shop-backend/internal/api/base/handler"
	catalogdto "github.com/amritage/fabric-shop-backend/internal/api/catalog/dto"
	catalogmodels "github.com/amritage/fabric-shop-backend/internal/api/catalog/models"
	catalogsvc "github.com/amritage/fabric-shop-backend/internal/api/catalog/service"
	"github.com/amritage/fabric-shop-backend/internal/common"
	"github.com/amritage/fabric-shop-backend/internal/global"
	"github.com/amritage/fabric-shop-backend/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// bindAndValidate parse body và chạy validator cho input bất kỳ
func bindAndValidate(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().Body(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Dữ liệu không hợp lệ: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// SubFinishHandler xử lý CRUD kiểu hoàn thiện con
type SubFinishHandler struct {
	Service *catalogsvc.SubFacetService[catalogmodels.SubFinish]
}

// NewSubFinishHandler tạo SubFinishHandler mới
func NewSubFinishHandler(guard *catalogsvc.IntegrityGuard) (*SubFinishHandler, error) {
	col := global.MongoDB_ColNames
	svc, err := catalogsvc.NewSubFacetService[catalogmodels.SubFinish](
		"subfinish", col.SubFinishes, "finish", col.Finishes, guard)
	if err != nil {
		return nil, fmt.Errorf("tạo SubFacetService subfinish: %w", err)
	}
	return &SubFinishHandler{Service: svc}, nil
}

// HandleCreate xử lý POST /subfinish/add
func (h *SubFinishHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input catalogdto.SubFinishCreateInput
		if err := bindAndValidate(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		parentID, err := utility.String2ObjectID(input.FinishID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		doc := catalogmodels.SubFinish{Name: input.Name, FinishID: parentID}
		data, err := h.Service.Create(c.Context(), doc, parentID)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleList xử lý GET /subfinish/view
func (h *SubFinishHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.Service.List(c.Context())
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleGetById xử lý GET /subfinish/view/:id
func (h *SubFinishHandler) HandleGetById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		data, err := h.Service.FindOneById(c.Context(), id)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleUpdate xử lý PUT /subfinish/update/:id
func (h *SubFinishHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		var input catalogdto.SubFinishUpdateInput
		if err := bindAndValidate(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		set := bson.M{}
		var newParent *primitive.ObjectID
		if input.Name != "" {
			set["name"] = input.Name
		}
		if input.FinishID != "" {
			parentID, err := utility.String2ObjectID(input.FinishID)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			set["finishId"] = parentID
			newParent = &parentID
		}

		data, err := h.Service.Update(c.Context(), id, set, newParent)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleDelete xử lý DELETE /subfinish/delete/:id
func (h *SubFinishHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if err := h.Service.Delete(c.Context(), id); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, fiber.Map{"deleted": true}, nil)
	})
}

// SubStructureHandler xử lý CRUD cấu trúc con
type SubStructureHandler struct {
	Service *catalogsvc.SubFacetService[catalogmodels.SubStructure]
}

// NewSubStructureHandler tạo SubStructureHandler mới
func NewSubStructureHandler(guard *catalogsvc.IntegrityGuard) (*SubStructureHandler, error) {
	col := global.MongoDB_ColNames
	svc, err := catalogsvc.NewSubFacetService[catalogmodels.SubStructure](
		"substructure", col.SubStructures, "structure", col.Structures, guard)
	if err != nil {
		return nil, fmt.Errorf("tạo SubFacetService substructure: %w", err)
	}
	return &SubStructureHandler{Service: svc}, nil
}

// HandleCreate xử lý POST /substructure/add
func (h *SubStructureHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input catalogdto.SubStructureCreateInput
		if err := bindAndValidate(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		parentID, err := utility.String2ObjectID(input.StructureID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		doc := catalogmodels.SubStructure{Name: input.Name, StructureID: parentID}
		data, err := h.Service.Create(c.Context(), doc, parentID)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleList xử lý GET /substructure/view
func (h *SubStructureHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.Service.List(c.Context())
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleGetById xử lý GET /substructure/view/:id
func (h *SubStructureHandler) HandleGetById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		data, err := h.Service.FindOneById(c.Context(), id)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleUpdate xử lý PUT /substructure/update/:id
func (h *SubStructureHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		var input catalogdto.SubStructureUpdateInput
		if err := bindAndValidate(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		set := bson.M{}
		var newParent *primitive.ObjectID
		if input.Name != "" {
			set["name"] = input.Name
		}
		if input.StructureID != "" {
			parentID, err := utility.String2ObjectID(input.StructureID)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			set["structureId"] = parentID
			newParent = &parentID
		}

		data, err := h.Service.Update(c.Context(), id, set, newParent)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleDelete xử lý DELETE /substructure/delete/:id
func (h *SubStructureHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if err := h.Service.Delete(c.Context(), id); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, fiber.Map{"deleted": true}, nil)
	})
}

// SubSuitableHandler xử lý CRUD mục đích sử dụng con
type SubSuitableHandler struct {
	Service *catalogsvc.SubFacetService[catalogmodels.SubSuitable]
}

// NewSubSuitableHandler tạo SubSuitableHandler mới
func NewSubSuitableHandler(guard *catalogsvc.IntegrityGuard) (*SubSuitableHandler, error) {
	col := global.MongoDB_ColNames
	svc, err := catalogsvc.NewSubFacetService[catalogmodels.SubSuitable](
		"subsuitable", col.SubSuitables, "suitablefor", col.Suitablefors, guard)
	if err != nil {
		return nil, fmt.Errorf("tạo SubFacetService subsuitable: %w", err)
	}
	return &SubSuitableHandler{Service: svc}, nil
}

// HandleCreate xử lý POST /subsuitable/add
func (h *SubSuitableHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input catalogdto.SubSuitableCreateInput
		if err := bindAndValidate(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		parentID, err := utility.String2ObjectID(input.SuitableforID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		doc := catalogmodels.SubSuitable{Name: input.Name, SuitableforID: parentID}
		data, err := h.Service.Create(c.Context(), doc, parentID)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleList xử lý GET /subsuitable/view
func (h *SubSuitableHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.Service.List(c.Context())
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleGetById xử lý GET /subsuitable/view/:id
func (h *SubSuitableHandler) HandleGetById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		data, err := h.Service.FindOneById(c.Context(), id)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleUpdate xử lý PUT /subsuitable/update/:id
func (h *SubSuitableHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		var input catalogdto.SubSuitableUpdateInput
		if err := bindAndValidate(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		set := bson.M{}
		var newParent *primitive.ObjectID
		if input.Name != "" {
			set["name"] = input.Name
		}
		if input.SuitableforID != "" {
			parentID, err := utility.String2ObjectID(input.SuitableforID)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			set["suitableforId"] = parentID
			newParent = &parentID
		}

		data, err := h.Service.Update(c.Context(), id, set, newParent)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleDelete xử lý DELETE /subsuitable/delete/:id
func (h *SubSuitableHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if err := h.Service.Delete(c.Context(), id); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, fiber.Map{"deleted": true}, nil)
	})
}
