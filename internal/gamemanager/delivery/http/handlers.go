package http

import (
	"github.com/gin-gonic/gin"

	"game-manager/internal/gamemanager"
	"game-manager/pkg/response"
)

// ExecuteVoIP godoc
// @Summary     Execute a VoIP task
// @Description Executes a voice-over-IP task against its audio stream.
// @Tags        VoIP Game Manager
// @Accept      json
// @Produce     json
// @Param       body body voipTaskReq true "VoIP task"
// @Success     201  {object} executeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /voip-game-manager/tasks [POST]
func (h *handler) ExecuteVoIP(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindTask[voipTaskReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExecuteVoIP(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExecuteVoIP: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newExecuteResp(output))
}

// ExecuteVR godoc
// @Summary     Execute a VR task
// @Description Executes a virtual-reality task against its 3D asset.
// @Tags        VR Game Manager
// @Accept      json
// @Produce     json
// @Param       body body vrTaskReq true "VR task"
// @Success     201  {object} executeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /vr-game-manager/tasks [POST]
func (h *handler) ExecuteVR(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindTask[vrTaskReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExecuteVR(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExecuteVR: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newExecuteResp(output))
}

// ExecuteIoT godoc
// @Summary     Execute an IoT task
// @Description Executes an IoT task for a device with an arbitrary JSON payload.
// @Tags        IoT Game Manager
// @Accept      json
// @Produce     json
// @Param       body body iotTaskReq true "IoT task"
// @Success     201  {object} executeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /iot-game-manager/tasks [POST]
func (h *handler) ExecuteIoT(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindTask[iotTaskReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExecuteIoT(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExecuteIoT: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newExecuteResp(output))
}

// ExecuteGeospatial godoc
// @Summary     Execute a geospatial task
// @Description Executes a task at a latitude/longitude.
// @Tags        Geospatial Game Manager
// @Accept      json
// @Produce     json
// @Param       body body geospatialTaskReq true "Geospatial task"
// @Success     201  {object} executeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /geospatial-game-manager/tasks [POST]
func (h *handler) ExecuteGeospatial(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindTask[geospatialTaskReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExecuteGeospatial(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExecuteGeospatial: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newExecuteResp(output))
}

// ListExecutions godoc
// @Summary     List recent executions
// @Description Returns the recent executions of one game manager, newest first.
// @Tags        Executions
// @Produce     json
// @Param       manager path  string true  "Manager (voip, vr, iot, geospatial)"
// @Param       limit   query int    false "Page size (default: 20, max: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /{manager}-game-manager/tasks [GET]
func (h *handler) ListExecutions(kind gamemanager.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		req, err := h.processListReq(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		output, err := h.uc.ListExecutions(ctx, req.toInput(kind))
		if err != nil {
			h.l.Errorf(ctx, "uc.ListExecutions: %v", err)
			response.Error(c, h.mapError(err))
			return
		}

		response.OK(c, h.newListResp(output))
	}
}
