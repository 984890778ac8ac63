package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cloud-demo-apps/internal/greeting"
)

// HostnameFunc resolves the name of the node serving a request
type HostnameFunc func() (string, error)

// HelloResponse is the body of /api/hello
type HelloResponse struct {
	Message string `json:"message"`
}

// NodeResponse is the body of /api/node
type NodeResponse struct {
	Node string `json:"node"`
}

// WebHandler serves the demo web application routes
type WebHandler struct {
	profile  Profile
	hostname HostnameFunc
}

// NewWebHandler creates a new web handler
func NewWebHandler(profile Profile, hostname HostnameFunc) *WebHandler {
	return &WebHandler{
		profile:  profile,
		hostname: hostname,
	}
}

// @Summary Health check
// @Description Liveness probe for load balancers and orchestrators
// @Tags health
// @Produce plain
// @Produce json
// @Success 200 {string} string "ok"
// @Router /health [get]
func (h *WebHandler) Health(c *gin.Context) {
	logrus.WithField("profile", h.profile.Name).Debug("health check endpoint called")

	if h.profile.HealthJSON {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	c.String(http.StatusOK, "ok")
}

// @Summary Index
// @Description Static greeting for the deployment target
// @Tags hello
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *WebHandler) Index(c *gin.Context) {
	logrus.WithField("profile", h.profile.Name).Info("index endpoint called")
	c.String(http.StatusOK, h.profile.IndexMessage)
}

// @Summary Greet a user
// @Description Greets the user named in the query string
// @Tags hello
// @Produce json
// @Param user query string false "Name to greet"
// @Success 200 {object} HelloResponse
// @Router /api/hello [get]
func (h *WebHandler) Hello(c *gin.Context) {
	var name greeting.Name
	if user, ok := c.GetQuery("user"); ok {
		name = greeting.NameOf(user)
	}

	logrus.WithFields(logrus.Fields{
		"user":    name.Value(),
		"present": name.Present(),
	}).Info("/api/hello called")

	c.JSON(http.StatusOK, HelloResponse{Message: greeting.Greet(name)})
}

// @Summary Node identity
// @Description Reports the hostname of the node that served the request
// @Tags hello
// @Produce json
// @Success 200 {object} NodeResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/node [get]
func (h *WebHandler) Node(c *gin.Context) {
	hostname, err := h.hostname()
	if err != nil {
		_ = c.Error(fmt.Errorf("resolving hostname: %w", err)).SetType(gin.ErrorTypePublic)
		return
	}

	logrus.WithField("node", hostname).Info("/api/node called")
	c.JSON(http.StatusOK, NodeResponse{Node: hostname})
}

// @Summary Echo an invocation event
// @Description Runs a Lambda-style invocation event through the greeting normalizer
// @Tags hello
// @Accept json
// @Produce json
// @Param event body object true "Invocation event"
// @Success 200 {object} greeting.Envelope
// @Failure 400 {object} greeting.Envelope
// @Router /api/echo [post]
func (h *WebHandler) Echo(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	event, err := greeting.DecodeEvent(data)
	if err != nil {
		envelope := greeting.Invalid(err)
		logrus.WithError(err).Warn("Error parsing input")
		c.JSON(envelope.StatusCode, envelope)
		return
	}

	envelope := greeting.Handle(event)
	logrus.WithFields(logrus.Fields{
		"shape":       greeting.Classify(event).Kind.String(),
		"status_code": envelope.StatusCode,
	}).Info("Returning response")

	c.JSON(envelope.StatusCode, envelope)
}
