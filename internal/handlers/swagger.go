package handlers

// @title Cloud Demo Apps API
// @version 1.0
// @description Health check and hello-world endpoints for load balancer and orchestrator demos

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @tag.name health
// @tag.description Liveness probes

// @tag.name hello
// @tag.description Greeting endpoints
