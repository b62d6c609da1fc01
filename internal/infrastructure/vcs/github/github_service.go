package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tomas-vilte/MateTriage/internal/domain/models"
	"github.com/Tomas-vilte/MateTriage/internal/domain/ports"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

// Interfaces mínimas sobre los services de go-github para poder mockear
// el cliente en los tests.
type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error)
}

type IssuesService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.Issue, *github.Response, error)
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
	ListLabels(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.Label, *github.Response, error)
	CreateLabel(ctx context.Context, owner, repo string, label *github.Label) (*github.Label, *github.Response, error)
	AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
}

type RepositoriesService interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
}

type GitHubClient struct {
	prService     PullRequestsService
	issuesService IssuesService
	repoService   RepositoriesService
	owner         string
	repo          string
	trans         *i18n.Translations
}

func NewGitHubClient(owner, repo, token string, trans *i18n.Translations) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService:     client.PullRequests,
		issuesService: client.Issues,
		repoService:   client.Repositories,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

func NewGitHubClientWithServices(
	prService PullRequestsService,
	issuesService IssuesService,
	repoService RepositoriesService,
	owner string,
	repo string,
	trans *i18n.Translations,
) *GitHubClient {
	return &GitHubClient{
		prService:     prService,
		issuesService: issuesService,
		repoService:   repoService,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

func (ghc *GitHubClient) GetPR(ctx context.Context, prNumber int) (models.PRData, error) {
	pr, _, err := ghc.prService.Get(ctx, ghc.owner, ghc.repo, prNumber)
	if err != nil {
		return models.PRData{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_pr", 0, map[string]interface{}{"pr_number": prNumber}), err)
	}

	files, _, err := ghc.prService.ListFiles(ctx, ghc.owner, ghc.repo, prNumber, &github.ListOptions{PerPage: 100})
	if err != nil {
		return models.PRData{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_changed_files", 0, map[string]interface{}{"pr_number": prNumber}), err)
	}

	changed := make([]models.ChangedFile, 0, len(files))
	for _, f := range files {
		changed = append(changed, models.ChangedFile{
			Filename: f.GetFilename(),
			Patch:    f.GetPatch(),
		})
	}

	return models.PRData{
		Number:       prNumber,
		Title:        pr.GetTitle(),
		Body:         pr.GetBody(),
		Creator:      pr.GetUser().GetLogin(),
		HeadSHA:      pr.GetHead().GetSHA(),
		ChangedFiles: changed,
	}, nil
}

func (ghc *GitHubClient) GetIssue(ctx context.Context, issueNumber int) (models.IssueData, error) {
	issue, _, err := ghc.issuesService.Get(ctx, ghc.owner, ghc.repo, issueNumber)
	if err != nil {
		return models.IssueData{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_issue", 0, map[string]interface{}{"issue_number": issueNumber}), err)
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}

	return models.IssueData{
		Number: issueNumber,
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
		Author: issue.GetUser().GetLogin(),
		Labels: labels,
		URL:    issue.GetHTMLURL(),
	}, nil
}

func (ghc *GitHubClient) GetFileContent(ctx context.Context, path, ref string) (string, error) {
	fileContent, _, _, err := ghc.repoService.GetContents(ctx, ghc.owner, ghc.repo, path, &github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		return "", fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_file_content", 0, map[string]interface{}{"path": path}), err)
	}
	if fileContent == nil {
		return "", fmt.Errorf("%s", ghc.trans.GetMessage("error.path_is_directory", 0, map[string]interface{}{"path": path}))
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_file_content", 0, map[string]interface{}{"path": path}), err)
	}
	return content, nil
}

func (ghc *GitHubClient) CreateComment(ctx context.Context, number int, body string) error {
	comment := &github.IssueComment{Body: github.Ptr(body)}

	_, resp, err := ghc.issuesService.CreateComment(ctx, ghc.owner, ghc.repo, number, comment)
	if err != nil {
		// Detectar error 403 de permisos insuficientes del token
		if resp != nil && resp.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%s\n\n%s",
				ghc.trans.GetMessage("error.insufficient_permissions", 0, map[string]interface{}{
					"number": number,
					"owner":  ghc.owner,
					"repo":   ghc.repo,
				}),
				ghc.trans.GetMessage("error.token_scopes_help", 0, nil))
		}
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.create_comment", 0, map[string]interface{}{
			"number": number,
		}), err)
	}

	return nil
}

func (ghc *GitHubClient) EnsureLabel(ctx context.Context, name, color, description string) error {
	labels, _, err := ghc.issuesService.ListLabels(ctx, ghc.owner, ghc.repo, &github.ListOptions{PerPage: 100})
	if err != nil {
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.list_labels", 0, nil), err)
	}

	for _, l := range labels {
		if l.GetName() == name {
			return nil
		}
	}

	label := &github.Label{
		Name:        github.Ptr(name),
		Color:       github.Ptr(color),
		Description: github.Ptr(description),
	}
	if _, _, err := ghc.issuesService.CreateLabel(ctx, ghc.owner, ghc.repo, label); err != nil {
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.create_label", 0, map[string]interface{}{
			"label": name,
		}), err)
	}

	return nil
}

func (ghc *GitHubClient) AddLabels(ctx context.Context, number int, labels []string) error {
	if len(labels) == 0 {
		return nil
	}

	if _, _, err := ghc.issuesService.AddLabelsToIssue(ctx, ghc.owner, ghc.repo, number, labels); err != nil {
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.add_labels", 0, map[string]interface{}{
			"number": number,
		}), err)
	}

	return nil
}
