package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"corpintel/app/config"
	"corpintel/app/service/analyst"
	"corpintel/app/service/bot"
	"corpintel/app/service/pipeline"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
)

const shutdownTimeout = 5 * time.Second

type reportRunner interface {
	Run(ctx context.Context, company, threadID string) *pipeline.Record
}

type chatBot interface {
	Chat(ctx context.Context, input string) string
	Turns() []bot.Turn
}

type Service struct {
	cfg         *config.Config
	pipelineSvc reportRunner
	botSvc      chatBot

	app *fiber.App
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:         do.MustInvoke[*config.Config](di),
		pipelineSvc: do.MustInvoke[*pipeline.Service](di),
		botSvc:      do.MustInvoke[*bot.Service](di),
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	s.registerRoutes()

	return s, nil
}

func (s *Service) registerRoutes() {
	s.app.Get("/", s.handleIndex)
	s.app.Post("/api/report", s.handleReport)
	s.app.Post("/api/chat", s.handleChat)
	s.app.Get("/api/history", s.handleHistory)
}

// Run serves the dashboard until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		slog.Info("Dashboard listening", "addr", s.cfg.Server.Listen)
		errCh <- s.app.Listen(s.cfg.Server.Listen)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.app.ShutdownWithContext(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Service) handleIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexPage)
}

type reportRequest struct {
	Company  string `json:"company"`
	ThreadID string `json:"thread_id"`
}

type reportResponse struct {
	RunID     string       `json:"run_id"`
	Company   string       `json:"company"`
	Overview  string       `json:"overview"`
	Analysis  string       `json:"analysis"`
	RiskLevel string       `json:"risk_level"`
	Risks     []string     `json:"risks"`
	Report    string       `json:"report"`
	News      []newsItem   `json:"news"`
}

type newsItem struct {
	Headline  string  `json:"headline"`
	Source    string  `json:"source"`
	Sentiment float64 `json:"sentiment"`
	URL       string  `json:"url"`
}

func (s *Service) handleReport(c *fiber.Ctx) error {
	var req reportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	req.Company = strings.TrimSpace(req.Company)
	if req.Company == "" {
		return fiber.NewError(fiber.StatusBadRequest, "company is required")
	}
	if req.ThreadID == "" {
		req.ThreadID = "default"
	}

	record := s.pipelineSvc.Run(c.Context(), req.Company, req.ThreadID)

	resp := reportResponse{
		RunID:     record.RunID,
		Company:   record.Company,
		Overview:  analyst.FormatStockSummary(record.Stock),
		Analysis:  record.Analysis,
		RiskLevel: record.RiskLevel,
		Risks:     record.RiskFactors,
		Report:    record.FinalReport,
	}

	for _, article := range record.News {
		resp.News = append(resp.News, newsItem{
			Headline:  article.Headline,
			Source:    article.Source,
			Sentiment: article.SentimentScore,
			URL:       article.URL,
		})
	}

	return c.JSON(resp)
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Service) handleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}

	reply := s.botSvc.Chat(c.Context(), req.Message)

	return c.JSON(chatResponse{Reply: reply})
}

func (s *Service) handleHistory(c *fiber.Ctx) error {
	type turn struct {
		User string `json:"user"`
		Bot  string `json:"bot"`
	}

	turns := s.botSvc.Turns()
	out := make([]turn, 0, len(turns))
	for _, t := range turns {
		out = append(out, turn{User: t.User, Bot: t.Bot})
	}

	return c.JSON(out)
}
