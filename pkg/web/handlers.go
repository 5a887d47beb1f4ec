package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/helmcode/triage-ai/pkg/model"
	slackpkg "github.com/helmcode/triage-ai/pkg/slack"
)

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (s *Server) handleAnalyzeForm(c *gin.Context) {
	errorLog := strings.TrimSpace(c.PostForm("error_log"))
	codeSnippet := strings.TrimSpace(c.PostForm("code_snippet"))

	if errorLog == "" {
		c.HTML(http.StatusOK, "result.html", gin.H{"Result": model.EmptyLogResult()})
		return
	}

	result := s.triager.Run(c.Request.Context(), model.TriageRequest{
		ErrorLog:    errorLog,
		CodeSnippet: codeSnippet,
	})

	s.notify(result)
	c.HTML(http.StatusOK, "result.html", gin.H{"Result": result})
}

func (s *Server) handleAnalyzeAPI(c *gin.Context) {
	var req model.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.ErrorLog) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "error_log is required"})
		return
	}

	result := s.triager.Run(c.Request.Context(), req)

	s.notify(result)
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// notify posts the result to Slack when configured. Failures are logged and
// never affect the HTTP response.
func (s *Server) notify(result model.TriageResult) {
	if !s.slackCfg.Enabled() {
		return
	}
	if err := slackpkg.SendSummary(result, s.slackCfg); err != nil {
		log.Err(err).Msg("Slack notification failed")
	}
}
