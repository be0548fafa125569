package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/navigatorx-astar/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/navigatorx-astar/pkg/http/usecases"
	"go.uber.org/zap"
)

const maxRequestBodyBytes = 1 << 20

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
	validate       *validator.Validate
	trans          ut.Translator
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &routingAPI{
		routingService: routingService,
		log:            log,
		validate:       validate,
		trans:          trans,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.POST("/findpath", api.findPath)
	group.POST("/findpaths", api.findPaths)
	group.GET("/computeRoutes", api.shortestPath)
	group.GET("/status", api.status)
}

// validateRequest. nil or a validation error listing every failed field
func (api *routingAPI) validateRequest(request any) error {
	if err := api.validate.Struct(request); err != nil {
		vv := translateError(err, api.trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return fmt.Errorf("validation error: %v", vvString)
	}
	return nil
}

func (api *routingAPI) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json body: %w", err)
	}
	return nil
}

// findPath godoc
// @Summary		shortest path between two coordinates.
// @Description	snaps both coordinates to the nearest routable node and runs a bounded A* search.
// @Tags			routing
// @ID findPath
// @Param			body	body	findPathRequest	true	"start and end coordinates"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/findpath [post]
// @Success		200	{object}	findPathResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *routingAPI) findPath(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request findPathRequest
	if err := api.decodeJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	q := request.toQuery()
	route, err := api.routingService.ShortestPath(r.Context(), q.SrcLat, q.SrcLon, q.DstLat, q.DstLon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewFindPathResponse(route)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// findPaths godoc
// @Summary		shortest paths for a batch of coordinate pairs.
// @Description	every query is answered independently, results keep the order of the request.
// @Tags			routing
// @ID findPaths
// @Param			body	body	findPathsRequest	true	"1 to 100 queries"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/findpaths [post]
// @Success		200	{object}	findPathsResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *routingAPI) findPaths(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request findPathsRequest
	if err := api.decodeJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	queries := make([]usecases.Query, len(request.Queries))
	for i, q := range request.Queries {
		queries[i] = q.toQuery()
	}

	results, err := api.routingService.ShortestPaths(r.Context(), queries)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	resp := findPathsResponse{Results: make([]findPathsItem, len(results))}
	for i, res := range results {
		if res.Err != nil {
			_, code, message := errorStatus(res.Err)
			resp.Results[i] = findPathsItem{Error: &errorBody{Code: code, Message: message}}
			continue
		}
		route := NewFindPathResponse(res.Route)
		resp.Results[i] = findPathsItem{Route: &route}
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// shortestPath godoc
// @Summary		shortest path between two coordinates given as query parameters.
// @Tags			routing
// @ID computeRoutes
// @Param			origin_lat		query	number	true	"origin latitude"
// @Param			origin_lon		query	number	true	"origin longitude"
// @Param			destination_lat	query	number	true	"destination latitude"
// @Param			destination_lon	query	number	true	"destination longitude"
// @Produce		application/json
// @Router			/api/computeRoutes [get]
// @Success		200	{object}	findPathResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var (
		request shortestPathRequest
		err     error
	)

	query := r.URL.Query()

	request.OriginLat, err = strconv.ParseFloat(query.Get("origin_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lat is required and must be a valid float"))
		return
	}
	request.OriginLon, err = strconv.ParseFloat(query.Get("origin_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lon is required and must be a valid float"))
		return
	}
	request.DestinationLat, err = strconv.ParseFloat(query.Get("destination_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination_lat is required and must be a valid float"))
		return
	}
	request.DestinationLon, err = strconv.ParseFloat(query.Get("destination_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination_lon is required and must be a valid float"))
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, err := api.routingService.ShortestPath(r.Context(), request.OriginLat, request.OriginLon,
		request.DestinationLat, request.DestinationLon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewFindPathResponse(route)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// status godoc
// @Summary		graph size and service status.
// @Tags			routing
// @ID status
// @Produce		application/json
// @Router			/api/status [get]
// @Success		200	{object}	statusResponse
func (api *routingAPI) status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewStatusResponse(api.routingService.Status())}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
