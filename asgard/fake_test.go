package asgard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

const testToken = "test-token"

// fakeAsgard serves the asgard routes from memory
type fakeAsgard struct {
	sync.Mutex
	t *testing.T

	clusters      map[string][]string    // cluster -> ASG names, oldest first
	loadBalancers map[string][]string    // ASG -> ELB names
	listing       interface{}            // overrides the cluster listing when set
	showOverride  map[string]interface{} // overrides cluster show answers
	taskStatuses  []string               // statuses returned by every new task, last one repeats
	taskLog       []string               // log of every task
	failRoutes    map[string]int         // route -> HTTP status to answer with
	onCreate      func(cluster, imageID string)

	tasks  map[int]int // task id -> polls
	calls  map[string]int
	posted map[string][]url.Values

	server *httptest.Server
}

func newFakeAsgard(t *testing.T) *fakeAsgard {
	f := &fakeAsgard{
		t:             t,
		clusters:      map[string][]string{},
		loadBalancers: map[string][]string{},
		showOverride:  map[string]interface{}{},
		taskStatuses:  []string{"completed"},
		failRoutes:    map[string]int{},
		tasks:         map[int]int{},
		calls:         map[string]int{},
		posted:        map[string][]url.Values{},
	}
	f.onCreate = func(cluster, _ string) {
		asgs := f.clusters[cluster]
		f.clusters[cluster] = append(asgs, fmt.Sprintf("%s-v%03d", cluster, len(asgs)+1))
	}

	r := NewRouter()
	r.Get(ClusterList).HandlerFunc(f.handle(ClusterList, f.clusterList))
	r.Get(ClusterShow).HandlerFunc(f.handle(ClusterShow, f.clusterShow))
	r.Get(AutoScalingShow).HandlerFunc(f.handle(AutoScalingShow, f.autoScalingShow))
	r.Get(CreateNextGroup).HandlerFunc(f.handle(CreateNextGroup, f.createNextGroup))
	r.Get(Activate).HandlerFunc(f.handle(Activate, f.submit))
	r.Get(Deactivate).HandlerFunc(f.handle(Deactivate, f.submit))
	r.Get(TaskShow).HandlerFunc(f.handle(TaskShow, f.taskShow))
	// The HTML task page the action submissions redirect to.
	r.HandleFunc("/task/show/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>task</html>"))
	})

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAsgard) client() *Client {
	c, err := NewClient(NewHTTPClient(5*time.Second), f.server.URL, testToken)
	if err != nil {
		f.t.Fatalf("creating client: %v", err)
	}
	return c
}

func (f *fakeAsgard) lifecycle() *Lifecycle {
	c := f.client()
	d := NewDirectory(c)
	p := NewTaskPoller(c, 5*time.Millisecond)
	return NewLifecycle(c, p, d, Timeouts{Create: 2 * time.Second, Activate: 2 * time.Second, Deactivate: 2 * time.Second})
}

func (f *fakeAsgard) callCount(route string) int {
	f.Lock()
	defer f.Unlock()
	return f.calls[route]
}

func (f *fakeAsgard) forms(route string) []url.Values {
	f.Lock()
	defer f.Unlock()
	return append([]url.Values(nil), f.posted[route]...)
}

func (f *fakeAsgard) handle(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.Lock()
		defer f.Unlock()
		f.calls[route]++

		if r.URL.Query().Get(TokenParam) != testToken {
			http.Error(w, "bad token", http.StatusUnauthorized)
			return
		}
		if code, ok := f.failRoutes[route]; ok {
			http.Error(w, "boom", code)
			return
		}
		h(w, r)
	}
}

func (f *fakeAsgard) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		f.t.Errorf("encoding answer: %v", err)
	}
}

func (f *fakeAsgard) clusterList(w http.ResponseWriter, r *http.Request) {
	if f.listing != nil {
		f.writeJSON(w, f.listing)
		return
	}
	names := []string{}
	for n := range f.clusters {
		names = append(names, n)
	}
	sort.Strings(names)
	listing := []map[string]interface{}{}
	for _, n := range names {
		listing = append(listing, map[string]interface{}{
			"cluster":           n,
			"autoScalingGroups": f.clusters[n],
		})
	}
	f.writeJSON(w, listing)
}

func (f *fakeAsgard) clusterShow(w http.ResponseWriter, r *http.Request) {
	cluster := mux.Vars(r)["cluster"]
	if o, ok := f.showOverride[cluster]; ok {
		f.writeJSON(w, o)
		return
	}
	asgs, ok := f.clusters[cluster]
	if !ok {
		http.NotFound(w, r)
		return
	}
	entries := []map[string]interface{}{}
	for _, a := range asgs {
		entries = append(entries, map[string]interface{}{"autoScalingGroupName": a, "status": "active"})
	}
	f.writeJSON(w, entries)
}

func (f *fakeAsgard) autoScalingShow(w http.ResponseWriter, r *http.Request) {
	asg := mux.Vars(r)["asg"]
	lbs, ok := f.loadBalancers[asg]
	if !ok {
		f.writeJSON(w, map[string]interface{}{})
		return
	}
	f.writeJSON(w, map[string]interface{}{
		"group": map[string]interface{}{
			"autoScalingGroupName": asg,
			"loadBalancerNames":    lbs,
		},
	})
}

func (f *fakeAsgard) createNextGroup(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	f.onCreate(r.PostForm.Get("name"), r.PostForm.Get("imageId"))
	f.submit(w, r)
}

func (f *fakeAsgard) submit(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	route := mux.CurrentRoute(r).GetName()
	f.posted[route] = append(f.posted[route], r.PostForm)

	id := len(f.tasks) + 1
	f.tasks[id] = 0
	http.Redirect(w, r, fmt.Sprintf("/task/show/%d", id), http.StatusFound)
}

func (f *fakeAsgard) taskShow(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	polls := f.tasks[id]
	f.tasks[id] = polls + 1

	status := f.taskStatuses[len(f.taskStatuses)-1]
	if polls < len(f.taskStatuses) {
		status = f.taskStatuses[polls]
	}
	f.writeJSON(w, map[string]interface{}{
		"id":     id,
		"status": status,
		"log":    f.taskLog,
	})
}
