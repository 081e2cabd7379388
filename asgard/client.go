package asgard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/slok/asg-deployer/log"
	"github.com/slok/asg-deployer/types"
)

// Client is the transport shared by the asgard components. Every call is a
// single attempt; the only retry-like loop lives in TaskPoller.
type Client struct {
	client   *http.Client
	router   *mux.Router
	endpoint *url.URL
	token    string
}

// NewClient returns a client for the asgard API at endpoint
func NewClient(c *http.Client, endpoint, token string) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing asgard endpoint %s", endpoint)
	}
	if c == nil {
		c = http.DefaultClient
	}
	return &Client{
		client:   c,
		router:   NewRouter(),
		endpoint: u,
		token:    token,
	}, nil
}

// NewHTTPClient returns an HTTP client bounding every request by timeout
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// makeURL builds the absolute URL of a named route. vars are the route
// variable name/value pairs.
func (c *Client) makeURL(routeName string, vars ...string) (*url.URL, error) {
	route := c.router.Get(routeName)
	if route == nil {
		return nil, errors.New("no route with name " + routeName)
	}
	routeURL, err := route.URLPath(vars...)
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving route path %s", routeName)
	}

	u := *c.endpoint
	u.Path = path.Join(u.Path, routeURL.Path)
	u.RawQuery = ""
	return &u, nil
}

// resolve turns a possibly relative handle into an absolute URL on the endpoint
func (c *Client) resolve(handle string) (*url.URL, error) {
	u, err := url.Parse(handle)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing URL %s", handle)
	}
	return c.endpoint.ResolveReference(u), nil
}

func (c *Client) withToken(u *url.URL) *url.URL {
	withToken := *u
	q := withToken.Query()
	q.Set(TokenParam, c.token)
	withToken.RawQuery = q.Encode()
	return &withToken
}

// get queries a named route and decodes the JSON answer into dest
func (c *Client) get(ctx context.Context, dest interface{}, routeName string, vars ...string) error {
	u, err := c.makeURL(routeName, vars...)
	if err != nil {
		return err
	}
	return c.getURL(ctx, dest, u)
}

// getURL queries u and decodes the JSON answer into dest
func (c *Client) getURL(ctx context.Context, dest interface{}, u *url.URL) error {
	req, err := http.NewRequest("GET", c.withToken(u).String(), nil)
	if err != nil {
		return errors.Wrapf(err, "constructing request %s", u)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")

	log.Debugf("GET %s", u)
	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "executing HTTP request GET %s", u)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "reading response from %s", u)
	}
	if err := checkStatus(resp, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return types.NewBackendDataError("decoding response from %s: %v", u.Path, err)
	}
	return nil
}

// postForm submits form to a named route and returns the URL the backend
// finally answered from. Asgard redirects action submissions to the status
// page of the task it started, so that URL is the task handle.
func (c *Client) postForm(ctx context.Context, routeName string, form url.Values) (string, error) {
	u, err := c.makeURL(routeName)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", c.withToken(u).String(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrapf(err, "constructing request %s", u)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	log.Debugf("POST %s %v", u, form)
	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "executing HTTP request POST %s", u)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", errors.Wrapf(err, "reading response from %s", u)
	}
	if err := checkStatus(resp, body); err != nil {
		return "", err
	}
	return resp.Request.URL.String(), nil
}

func checkStatus(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 512 {
		msg = msg[:512]
	}
	return fmt.Errorf("asgard answered %s to %s %s: %s", resp.Status, resp.Request.Method, resp.Request.URL.Path, msg)
}
