package controllers

import (
	"github.com/lintang-b-s/navigatorx-astar/pkg/engine"
	"github.com/lintang-b-s/navigatorx-astar/pkg/guidance"
	"github.com/lintang-b-s/navigatorx-astar/pkg/http/usecases"
	"github.com/lintang-b-s/navigatorx-astar/pkg/util"
)

type findPathRequest struct {
	StartLat *float64 `json:"startLat" validate:"required,min=-90,max=90"`
	StartLon *float64 `json:"startLon" validate:"required,min=-180,max=180"`
	EndLat   *float64 `json:"endLat" validate:"required,min=-90,max=90"`
	EndLon   *float64 `json:"endLon" validate:"required,min=-180,max=180"`
}

func (r findPathRequest) toQuery() usecases.Query {
	return usecases.Query{
		SrcLat: *r.StartLat,
		SrcLon: *r.StartLon,
		DstLat: *r.EndLat,
		DstLon: *r.EndLon,
	}
}

type findPathsRequest struct {
	Queries []findPathRequest `json:"queries" validate:"required,min=1,max=100,dive"`
}

type shortestPathRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"min=-180,max=180"`
}

type findPathResponse struct {
	Path       [][2]float64 `json:"path"`
	Distance   float64      `json:"distance"`
	Points     int          `json:"points"`
	Polyline   string       `json:"polyline"`
	StartNode  string       `json:"start_node"`
	EndNode    string       `json:"end_node"`
	Expansions int          `json:"expansions"`

	DrivingDirections []drivingDirection `json:"driving_directions"`
}

type drivingDirection struct {
	Instruction string     `json:"instruction"`
	Point       [2]float64 `json:"turn_point"`
	StreetName  string     `json:"street_name"`
	Distance    float64    `json:"distance"`
	Polyline    string     `json:"polyline"`
	TurnBearing float64    `json:"turn_bearing"`
	TurnType    string     `json:"turn_type"`
}

func NewDrivingDirections(dirs []guidance.DrivingDirection) []drivingDirection {
	out := make([]drivingDirection, len(dirs))
	for i, d := range dirs {
		out[i] = drivingDirection{
			Instruction: d.Instruction,
			Point:       [2]float64{d.Point.Lat, d.Point.Lon},
			StreetName:  d.StreetName,
			Distance:    d.DistanceKm,
			Polyline:    d.Polyline,
			TurnBearing: d.TurnBearing,
			TurnType:    d.TurnType,
		}
	}
	return out
}

func NewFindPathResponse(route *engine.Route) findPathResponse {
	path := make([][2]float64, len(route.Path))
	for i, c := range route.Path {
		path[i] = [2]float64{c.Lat, c.Lon}
	}
	return findPathResponse{
		Path:       path,
		Distance:   util.RoundFloat(route.DistanceKm, 6),
		Points:     len(route.Path),
		Polyline:   route.Polyline,
		StartNode:  route.StartNode,
		EndNode:    route.EndNode,
		Expansions: route.Expansions,

		DrivingDirections: NewDrivingDirections(route.Directions),
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type findPathsItem struct {
	Route *findPathResponse `json:"route,omitempty"`
	Error *errorBody        `json:"error,omitempty"`
}

type findPathsResponse struct {
	Results []findPathsItem `json:"results"`
}

type statusResponse struct {
	Nodes      int    `json:"nodes"`
	GraphNodes int    `json:"graphNodes"`
	Edges      int    `json:"edges"`
	Status     string `json:"status"`
}

func NewStatusResponse(s engine.Status) statusResponse {
	return statusResponse{
		Nodes:      s.Nodes,
		GraphNodes: s.RoutableNodes,
		Edges:      s.Edges,
		Status:     "OK",
	}
}
