package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/paatthya/console/core/batch"
)

type batchApi struct {
	svc *batch.Service
}

func registerBatchAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *batch.Service) {
	api := batchApi{svc: svc}

	bg := g.Group("/batches", jwt)
	bg.GET("", api.query)
	bg.POST("", api.create)
	bg.GET("/:id", api.retrieve)
	bg.DELETE("/:id", api.destroy)

	mg := bg.Group("/:id/materials/:kind", kindMiddleware)
	mg.GET("", api.materials)
	mg.POST("", api.addMaterial)
	mg.PUT("/:materialId", api.updateMaterial)
	mg.DELETE("/:materialId", api.deleteMaterial)
}

// BatchResponse is a batch as listed in the console, with its computed discount.
type BatchResponse struct {
	batch.Batch
	DiscountPercent int `json:"discountPercent"`
}

func newBatchResponse(b batch.Batch) BatchResponse {
	return BatchResponse{Batch: b, DiscountPercent: b.DiscountPercent()}
}

const contextKindKey = "kind"

func kindMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		kind, err := batch.ParseKind(ctx.Param("kind"))
		if err != nil {
			return err
		}
		ctx.Set(contextKindKey, kind)
		return next(ctx)
	}
}

func contextKind(ctx echo.Context) batch.Kind {
	kind, _ := ctx.Get(contextKindKey).(batch.Kind)
	return kind
}

func (api *batchApi) query(ctx echo.Context) error {
	batches, err := api.svc.Query(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying batches")
	}
	res := make([]BatchResponse, len(batches))
	for i, b := range batches {
		res[i] = newBatchResponse(b)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *batchApi) create(ctx echo.Context) error {
	var data batch.NewBatch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewBatch")
	}
	b, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating batch")
	}
	return ctx.JSON(http.StatusCreated, newBatchResponse(b))
}

func (api *batchApi) retrieve(ctx echo.Context) error {
	b, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "retrieving batch")
	}
	return ctx.JSON(http.StatusOK, newBatchResponse(b))
}

func (api *batchApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting batch")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *batchApi) materials(ctx echo.Context) error {
	views, err := api.svc.Materials(ctx.Request().Context(), ctx.Param("id"), contextKind(ctx))
	if err != nil {
		return errors.Wrap(err, "listing materials")
	}
	return ctx.JSON(http.StatusOK, views)
}

func (api *batchApi) addMaterial(ctx echo.Context) error {
	var data batch.MaterialInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MaterialInput")
	}
	views, err := api.svc.AddMaterial(ctx.Request().Context(), ctx.Param("id"), contextKind(ctx), data)
	if err != nil {
		return errors.Wrap(err, "adding material")
	}
	return ctx.JSON(http.StatusCreated, views)
}

func (api *batchApi) updateMaterial(ctx echo.Context) error {
	var data batch.MaterialInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MaterialInput")
	}
	views, err := api.svc.UpdateMaterial(ctx.Request().Context(), ctx.Param("id"), contextKind(ctx), ctx.Param("materialId"), data)
	if err != nil {
		return errors.Wrap(err, "updating material")
	}
	return ctx.JSON(http.StatusOK, views)
}

func (api *batchApi) deleteMaterial(ctx echo.Context) error {
	views, err := api.svc.DeleteMaterial(ctx.Request().Context(), ctx.Param("id"), contextKind(ctx), ctx.Param("materialId"))
	if err != nil {
		return errors.Wrap(err, "deleting material")
	}
	return ctx.JSON(http.StatusOK, views)
}
