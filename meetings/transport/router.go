package transport

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/openconf/meetpool/internal/bbb"
	"github.com/openconf/meetpool/internal/errors"
	"github.com/openconf/meetpool/internal/jwt"
	"github.com/openconf/meetpool/internal/log"
	"github.com/openconf/meetpool/internal/validation"
	"github.com/openconf/meetpool/meetings"
)

const (
	writeRateLimit  = 50
	writeRateBurst  = 100
	adminRolePolicy = "admin"
)

type Router struct {
	meetingSvc meetings.MeetingService
	memberSvc  meetings.MembershipService
	registry   meetings.Registry
	sched      meetings.Scheduler
	records    meetings.RecordStore
	jwtAuth    jwt.Auth
	limiter    *rate.Limiter
	engine     *gin.Engine
	logger     *log.Logger
}

func NewRouter(
	meetingSvc meetings.MeetingService,
	memberSvc meetings.MembershipService,
	registry meetings.Registry,
	sched meetings.Scheduler,
	records meetings.RecordStore,
	jwtAuth jwt.Auth,
	logger *log.Logger,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(otelgin.Middleware("meeting-service"))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: false,
	}))

	r := &Router{
		meetingSvc: meetingSvc,
		memberSvc:  memberSvc,
		registry:   registry,
		sched:      sched,
		records:    records,
		jwtAuth:    jwtAuth,
		limiter:    rate.NewLimiter(writeRateLimit, writeRateBurst),
		engine:     engine,
		logger:     logger,
	}

	// Request logging middleware
	r.engine.Use(func(c *gin.Context) {
		r.logger.Info("Incoming request",
			log.String("method", c.Request.Method),
			log.String("url", c.Request.URL.String()))
		c.Next()
	})

	r.setupRoutes()
	return r
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func (r *Router) setupRoutes() {
	// Meeting lifecycle routes
	r.engine.POST("/api/meetings", r.throttle, r.createMeeting)
	r.engine.GET("/api/meetings/:meetingId", r.getMeetingInfo)
	r.engine.POST("/api/meetings/:meetingId/join", r.throttle, r.joinMeeting)
	r.engine.POST("/api/meetings/:meetingId/end", r.throttle, r.endMeeting)
	r.engine.POST("/api/members/:membershipId/exit", r.throttle, r.exitMember)

	// Admin routes
	admin := r.engine.Group("/api/admin", r.requireAdmin)
	admin.POST("/servers", r.throttle, r.createServer)
	admin.GET("/servers", r.listServers)
	admin.GET("/servers/capable", r.capableServer)
	admin.GET("/servers/:serverId", r.getServer)
	admin.PUT("/servers/:serverId", r.throttle, r.updateServer)
	admin.DELETE("/servers/:serverId", r.throttle, r.deleteServer)
	admin.POST("/members/:membershipId/ban", r.throttle, r.banMember)
	admin.GET("/recordings", r.listRecordings)
	admin.GET("/recordings/:meetingId", r.getRecording)

	// Health check
	r.engine.GET("/health", r.healthCheck)
}

// throttle applies a global rate limit to state-changing routes.
func (r *Router) throttle(c *gin.Context) {
	if !r.limiter.Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"error":   "Too many requests",
		})
		return
	}
	c.Next()
}

// requireAdmin guards admin routes with a bearer token carrying the admin role.
func (r *Router) requireAdmin(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Authorization header required",
		})
		return
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	payload, err := r.jwtAuth.Verify(token)
	if err != nil {
		r.logger.Warn("Invalid admin token",
			log.String("url", c.Request.URL.String()),
			log.Error(err))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Access denied",
		})
		return
	}
	if payload.Role != adminRolePolicy {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Access denied",
		})
		return
	}
	c.Next()
}

func (r *Router) createMeeting(c *gin.Context) {
	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.badRequest(c, err)
		return
	}

	meeting, err := r.meetingSvc.CreateMeeting(c.Request.Context(), &meetings.CreateMeetingRequest{
		Name:      req.Name,
		MeetingID: req.MeetingID,
		Record:    req.Record,
	})
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"meeting": meeting,
	})
}

func (r *Router) getMeetingInfo(c *gin.Context) {
	var uri MeetingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		r.badRequest(c, err)
		return
	}

	info, err := r.meetingSvc.GetMeetingInfo(c.Request.Context(), uri.MeetingID)
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"meeting": info,
	})
}

// joinMeeting answers with a redirect to the signed backend join URL. The
// membership details travel in the body for clients that do not follow it.
func (r *Router) joinMeeting(c *gin.Context) {
	var uri MeetingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		r.badRequest(c, err)
		return
	}
	var body JoinMeetingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		r.badRequest(c, err)
		return
	}

	resp, err := r.memberSvc.JoinMeeting(c.Request.Context(), &meetings.JoinMeetingRequest{
		MeetingID: uri.MeetingID,
		Alias:     body.Alias,
		FullName:  body.FullName,
		Role:      meetings.Role(body.Role),
		Password:  body.Password,
	})
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.Header("Location", resp.JoinURL)
	c.JSON(http.StatusFound, gin.H{
		"success":    true,
		"membership": resp,
	})
}

func (r *Router) endMeeting(c *gin.Context) {
	var uri MeetingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		r.badRequest(c, err)
		return
	}
	var body EndMeetingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		r.badRequest(c, err)
		return
	}

	if err := r.meetingSvc.EndMeeting(c.Request.Context(), uri.MeetingID, body.Password); err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Meeting ended",
	})
}

func (r *Router) exitMember(c *gin.Context) {
	var uri MembershipURI
	if err := c.ShouldBindUri(&uri); err != nil {
		r.badRequest(c, err)
		return
	}

	if err := r.memberSvc.ExitUser(c.Request.Context(), uri.MembershipID); err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Member exited",
	})
}

func (r *Router) banMember(c *gin.Context) {
	var uri MembershipURI
	if err := c.ShouldBindUri(&uri); err != nil {
		r.badRequest(c, err)
		return
	}

	if err := r.memberSvc.BanUser(c.Request.Context(), uri.MembershipID); err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Member banned",
	})
}

func (r *Router) createServer(c *gin.Context) {
	var body UpsertServerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		r.badRequest(c, err)
		return
	}

	srv, err := r.registry.CreateServer(c.Request.Context(), body.URL, body.Secret, body.Limit)
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"server":  srv,
	})
}

func (r *Router) listServers(c *gin.Context) {
	servers, err := r.registry.ListServers(c.Request.Context())
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(servers),
		"servers": servers,
	})
}

func (r *Router) getServer(c *gin.Context) {
	var uri ServerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		r.badRequest(c, err)
		return
	}

	srv, err := r.registry.GetServer(c.Request.Context(), uri.ServerID)
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"server":  srv,
	})
}

func (r *Router) updateServer(c *gin.Context) {
	var uri ServerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		r.badRequest(c, err)
		return
	}
	var body UpsertServerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		r.badRequest(c, err)
		return
	}

	srv, err := r.registry.UpdateServer(c.Request.Context(),
		uri.ServerID, body.URL, body.Secret, body.Limit)
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"server":  srv,
	})
}

func (r *Router) deleteServer(c *gin.Context) {
	var uri ServerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		r.badRequest(c, err)
		return
	}

	if err := r.registry.DeleteServer(c.Request.Context(), uri.ServerID); err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Server deleted",
	})
}

func (r *Router) capableServer(c *gin.Context) {
	srv, err := r.sched.SelectCapableServer(c.Request.Context())
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"server":  srv,
	})
}

func (r *Router) listRecordings(c *gin.Context) {
	recordings, err := r.records.List(c.Request.Context())
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(recordings),
		"recordings": recordings,
	})
}

func (r *Router) getRecording(c *gin.Context) {
	var uri MeetingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		r.badRequest(c, err)
		return
	}

	rec, err := r.records.Get(c.Request.Context(), uri.MeetingID)
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"recording": rec,
	})
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "meetings",
		"timestamp": time.Now().Unix(),
	})
}

func (r *Router) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "Validation failed",
		"details": validation.FormatValidationError(err),
	})
}

// respondError maps domain error codes to HTTP statuses. Backend rejections
// keep the backend's message so callers see why the far side said no.
func (r *Router) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, meetings.ErrMeetingNotFound),
		errors.Is(err, meetings.ErrServerNotFound),
		errors.Is(err, meetings.ErrMembershipNotFound),
		errors.Is(err, meetings.ErrRecordingNotFound):
		status = http.StatusNotFound
	case errors.Is(err, meetings.ErrMeetingExists),
		errors.Is(err, meetings.ErrMeetingEnded),
		errors.Is(err, meetings.ErrServerNotEmpty),
		errors.Is(err, meetings.ErrUserAlreadyJoined),
		errors.Is(err, meetings.ErrServerFull),
		errors.Is(err, meetings.ErrNoCapableServer):
		status = http.StatusConflict
	case errors.Is(err, meetings.ErrUserBanned),
		errors.Is(err, meetings.ErrInvalidCredentials):
		status = http.StatusForbidden
	case errors.Is(err, bbb.ErrBackendUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, bbb.ErrBackendRejected):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		r.logger.Error("Unhandled error", log.Error(err))
		c.JSON(status, gin.H{
			"success": false,
			"error":   "Internal error",
		})
		return
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
