package asgard

import (
	"github.com/gorilla/mux"
)

// Asgard API route names
const (
	ClusterList     = "ClusterList"
	ClusterShow     = "ClusterShow"
	AutoScalingShow = "AutoScalingShow"
	CreateNextGroup = "CreateNextGroup"
	Activate        = "Activate"
	Deactivate      = "Deactivate"
	TaskShow        = "TaskShow"
)

// TokenParam is the query parameter carrying the API token on every request
const TokenParam = "asgardApiToken"

// NewRouter returns the asgard route table. The client uses it to build URLs;
// handlers can be attached to the named routes to serve a fake backend.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.NewRoute().Name(ClusterList).Methods("GET").Path("/cluster/list.json")
	r.NewRoute().Name(ClusterShow).Methods("GET").Path("/cluster/show/{cluster}.json")
	r.NewRoute().Name(AutoScalingShow).Methods("GET").Path("/autoScaling/show/{asg}.json")
	r.NewRoute().Name(CreateNextGroup).Methods("POST").Path("/cluster/createNextGroup")
	r.NewRoute().Name(Activate).Methods("POST").Path("/cluster/activate")
	r.NewRoute().Name(Deactivate).Methods("POST").Path("/cluster/deactivate")
	r.NewRoute().Name(TaskShow).Methods("GET").Path("/task/show/{id}.json")
	return r
}
