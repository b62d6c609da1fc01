package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Tomas-vilte/MateTriage/internal/config"
	"github.com/Tomas-vilte/MateTriage/internal/domain/models"
	"github.com/Tomas-vilte/MateTriage/internal/domain/ports"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/ai"
	"github.com/Tomas-vilte/MateTriage/internal/logger"
)

var _ ports.AssistantService = (*AssistantService)(nil)

// AssistantService orquesta el flujo del asistente: contexto, sugerencia,
// comentario y etiqueta. Tolera la ausencia de credenciales: sin suggester
// no llama al modelo, sin cliente VCS no publica.
type AssistantService struct {
	vcs       ports.VCSClient
	suggester ports.Suggester
	cfg       *config.Config
	trans     *i18n.Translations
	repoFull  string
}

func NewAssistantService(vcs ports.VCSClient, suggester ports.Suggester, cfg *config.Config, trans *i18n.Translations, repoFull string) *AssistantService {
	return &AssistantService{
		vcs:       vcs,
		suggester: suggester,
		cfg:       cfg,
		trans:     trans,
		repoFull:  repoFull,
	}
}

func (s *AssistantService) HandlePullRequest(ctx context.Context, pr models.EventPullRequest) (models.Suggestion, error) {
	if s.suggester == nil {
		logger.Warn(ctx, s.trans.GetMessage("gate.no_api_key", 0, nil), "pr", pr.Number)
		return models.Suggestion{}, nil
	}

	prData := models.PRData{
		Number:  pr.Number,
		Title:   pr.Title,
		Body:    pr.Body,
		HeadSHA: pr.Head.SHA,
	}

	// Con token disponible se enriquece el contexto con los archivos del PR.
	// Si falla, el prompt sale solo con los datos del evento.
	if s.vcs != nil {
		fetched, err := s.vcs.GetPR(ctx, pr.Number)
		if err != nil {
			logger.Warn(ctx, s.trans.GetMessage("warn.pr_context_unavailable", 0, nil), "pr", pr.Number, "err", err)
		} else {
			if fetched.Title == "" {
				fetched.Title = pr.Title
			}
			if fetched.Body == "" {
				fetched.Body = pr.Body
			}
			prData = fetched
		}
	}

	prompt := s.buildPRPrompt(ctx, prData)

	suggestion, err := s.suggester.Suggest(ctx, prompt)
	if err != nil {
		return models.Suggestion{}, fmt.Errorf("%s: %w", s.trans.GetMessage("error.generating_suggestion", 0, map[string]interface{}{
			"Number": pr.Number,
		}), err)
	}

	comment := s.formatComment("comment.pr_header", suggestion.Text)
	if err := s.publish(ctx, pr.Number, comment); err != nil {
		return suggestion, err
	}

	return suggestion, nil
}

func (s *AssistantService) HandleIssue(ctx context.Context, issue models.EventIssue) (models.Suggestion, error) {
	if s.suggester == nil {
		logger.Warn(ctx, s.trans.GetMessage("gate.no_api_key", 0, nil), "issue", issue.Number)
		return models.Suggestion{}, nil
	}

	issueData := models.IssueData{
		Number: issue.Number,
		Title:  issue.Title,
		Body:   issue.Body,
	}

	if s.vcs != nil {
		fetched, err := s.vcs.GetIssue(ctx, issue.Number)
		if err != nil {
			logger.Warn(ctx, s.trans.GetMessage("warn.issue_context_unavailable", 0, nil), "issue", issue.Number, "err", err)
		} else {
			issueData = fetched
		}
	}

	prompt := s.buildIssuePrompt(issueData)

	suggestion, err := s.suggester.Suggest(ctx, prompt)
	if err != nil {
		return models.Suggestion{}, fmt.Errorf("%s: %w", s.trans.GetMessage("error.generating_suggestion", 0, map[string]interface{}{
			"Number": issue.Number,
		}), err)
	}

	comment := s.formatComment("comment.issue_header", suggestion.Text)
	if err := s.publish(ctx, issue.Number, comment); err != nil {
		return suggestion, err
	}

	return suggestion, nil
}

// buildPRPrompt arma el prompt de PR: instrucción de sistema, bloque de
// contexto (archivos, rutas sensibles, snippets) y la tarea.
func (s *AssistantService) buildPRPrompt(ctx context.Context, prData models.PRData) models.Prompt {
	lang := s.cfg.Language

	system := s.cfg.Assistant.SystemPrompt
	if system == "" {
		system = ai.GetPRSystemPrompt(lang)
	}

	changedFilesList := s.trans.GetMessage("prompt.no_file_list", 0, nil)
	if len(prData.ChangedFiles) > 0 {
		var sb strings.Builder
		for _, f := range prData.ChangedFiles {
			sb.WriteString("- " + f.Filename + "\n")
		}
		changedFilesList = strings.TrimRight(sb.String(), "\n")
	}

	template := s.cfg.Assistant.PRPrompt
	if template == "" {
		template = ai.GetPRTaskTemplate(lang)
	}
	task := ai.RenderTemplate(template, map[string]string{
		"title":              prData.Title,
		"body":               prData.Body,
		"changed_files_list": changedFilesList,
		"repo_full":          s.repoFull,
		"pr_number":          strconv.Itoa(prData.Number),
	})

	return models.Prompt{
		System: system,
		User:   []string{s.buildPRContextBlock(ctx, prData, changedFilesList), task},
	}
}

func (s *AssistantService) buildPRContextBlock(ctx context.Context, prData models.PRData, changedFilesList string) string {
	var sb strings.Builder

	sb.WriteString(s.trans.GetMessage("prompt.changed_files_heading", 0, nil) + "\n")
	sb.WriteString(changedFilesList + "\n\n")

	sb.WriteString(s.trans.GetMessage("prompt.sensitive_paths_heading", 0, nil) + "\n")
	for _, p := range s.cfg.Assistant.SensitivePaths {
		sb.WriteString("- " + p + "\n")
	}

	snippets := s.collectSnippets(ctx, prData)
	if len(snippets) > 0 {
		sb.WriteString("\n" + s.trans.GetMessage("prompt.snippets_heading", 0, nil) + "\n")
		for _, snip := range snippets {
			sb.WriteString("--- " + snip.Filename + " ---\n")
			if snip.Patch == "" {
				sb.WriteString(s.trans.GetMessage("prompt.no_snippet", 0, nil) + "\n")
			} else {
				sb.WriteString(snip.Patch + "\n")
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// collectSnippets toma los primeros MaxSnippetFiles archivos del PR y arma
// un snippet por archivo: el patch si existe, o el contenido en el head del
// PR como fallback. Todo recortado a MaxFileSnippetLines líneas para no
// inflar el prompt.
func (s *AssistantService) collectSnippets(ctx context.Context, prData models.PRData) []models.ChangedFile {
	if s.cfg.MaxSnippetFiles <= 0 || len(prData.ChangedFiles) == 0 {
		return nil
	}

	limit := s.cfg.MaxSnippetFiles
	if limit > len(prData.ChangedFiles) {
		limit = len(prData.ChangedFiles)
	}
	maxLines := s.cfg.Assistant.MaxFileSnippetLines

	snippets := make([]models.ChangedFile, 0, limit)
	for _, f := range prData.ChangedFiles[:limit] {
		snippet := f.Patch
		if snippet == "" && s.vcs != nil && prData.HeadSHA != "" {
			content, err := s.vcs.GetFileContent(ctx, f.Filename, prData.HeadSHA)
			if err != nil {
				logger.Debug(ctx, "no se pudo obtener el contenido del archivo", "path", f.Filename, "err", err)
			} else {
				snippet = content
			}
		}
		snippets = append(snippets, models.ChangedFile{
			Filename: f.Filename,
			Patch:    truncateLines(snippet, maxLines),
		})
	}

	return snippets
}

func (s *AssistantService) buildIssuePrompt(issueData models.IssueData) models.Prompt {
	lang := s.cfg.Language

	system := s.cfg.Assistant.SystemPrompt
	if system == "" {
		system = ai.GetIssueSystemPrompt(lang)
	}

	template := s.cfg.Assistant.IssuePrompt
	if template == "" {
		template = ai.GetIssueTaskTemplate(lang)
	}
	task := ai.RenderTemplate(template, map[string]string{
		"title":        issueData.Title,
		"body":         issueData.Body,
		"repo_full":    s.repoFull,
		"issue_number": strconv.Itoa(issueData.Number),
	})

	return models.Prompt{
		System: system,
		User:   []string{task},
	}
}

// publish postea el comentario y aplica la etiqueta del asistente. Los
// fallos de etiqueta se degradan a warning: el comentario ya salió y la
// etiqueta suele fallar solo por permisos del token.
func (s *AssistantService) publish(ctx context.Context, number int, comment string) error {
	if s.vcs == nil {
		logger.Info(ctx, s.trans.GetMessage("info.no_token_skip_publish", 0, nil), "number", number)
		return nil
	}

	if err := s.vcs.CreateComment(ctx, number, comment); err != nil {
		return fmt.Errorf("%s: %w", s.trans.GetMessage("error.create_comment", 0, map[string]interface{}{
			"number": number,
		}), err)
	}

	label := s.cfg.Label
	if err := s.vcs.EnsureLabel(ctx, label, s.cfg.LabelColor, "AI-assisted content"); err != nil {
		logger.Warn(ctx, s.trans.GetMessage("warn.label_ensure_failed", 0, nil), "label", label, "err", err)
		return nil
	}
	if err := s.vcs.AddLabels(ctx, number, []string{label}); err != nil {
		logger.Warn(ctx, s.trans.GetMessage("warn.label_apply_failed", 0, nil), "label", label, "err", err)
	}

	return nil
}

func (s *AssistantService) formatComment(headerKey, suggestion string) string {
	header := s.trans.GetMessage(headerKey, 0, nil)
	footer := s.trans.GetMessage("comment.review_footer", 0, nil)
	return header + "\n\n" + suggestion + "\n\n" + footer
}

func truncateLines(text string, maxLines int) string {
	if text == "" || maxLines <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}
	return strings.Join(lines[:maxLines], "\n")
}
