package github

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClient(pr *MockPRService, issues *MockIssuesService, repos *MockRepoService) *GitHubClient {
	trans, _ := i18n.NewTranslations("es", "")
	return NewGitHubClientWithServices(pr, issues, repos, "test-owner", "test-repo", trans)
}

func TestGitHubClient_GetPR(t *testing.T) {
	t.Run("should fetch PR with changed files", func(t *testing.T) {
		mockPR := &MockPRService{}
		client := newTestClient(mockPR, &MockIssuesService{}, &MockRepoService{})

		mockPR.On("Get", mock.Anything, "test-owner", "test-repo", 42).
			Return(&github.PullRequest{
				Title: github.Ptr("fix: timeout"),
				Body:  github.Ptr("Sube el timeout"),
				User:  &github.User{Login: github.Ptr("tomas")},
				Head:  &github.PullRequestBranch{SHA: github.Ptr("abc123")},
			}, &github.Response{}, nil)

		mockPR.On("ListFiles", mock.Anything, "test-owner", "test-repo", 42, mock.Anything).
			Return([]*github.CommitFile{
				{Filename: github.Ptr("client.go"), Patch: github.Ptr("@@ -1 +1 @@")},
				{Filename: github.Ptr("logo.png")},
			}, &github.Response{}, nil)

		prData, err := client.GetPR(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, "fix: timeout", prData.Title)
		assert.Equal(t, "tomas", prData.Creator)
		assert.Equal(t, "abc123", prData.HeadSHA)
		require.Len(t, prData.ChangedFiles, 2)
		assert.Equal(t, "client.go", prData.ChangedFiles[0].Filename)
		assert.Equal(t, "@@ -1 +1 @@", prData.ChangedFiles[0].Patch)
		assert.Empty(t, prData.ChangedFiles[1].Patch)
		mockPR.AssertExpectations(t)
	})

	t.Run("should propagate API error", func(t *testing.T) {
		mockPR := &MockPRService{}
		client := newTestClient(mockPR, &MockIssuesService{}, &MockRepoService{})

		apiErr := errors.New("boom")
		mockPR.On("Get", mock.Anything, "test-owner", "test-repo", 42).
			Return((*github.PullRequest)(nil), &github.Response{}, apiErr)

		_, err := client.GetPR(context.Background(), 42)
		assert.ErrorIs(t, err, apiErr)
	})
}

func TestGitHubClient_GetIssue(t *testing.T) {
	mockIssues := &MockIssuesService{}
	client := newTestClient(&MockPRService{}, mockIssues, &MockRepoService{})

	mockIssues.On("Get", mock.Anything, "test-owner", "test-repo", 7).
		Return(&github.Issue{
			Title:  github.Ptr("panic al arrancar"),
			Body:   github.Ptr("stacktrace..."),
			User:   &github.User{Login: github.Ptr("reporter")},
			Labels: []*github.Label{{Name: github.Ptr("bug")}},
		}, &github.Response{}, nil)

	issue, err := client.GetIssue(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "panic al arrancar", issue.Title)
	assert.Equal(t, "reporter", issue.Author)
	assert.Equal(t, []string{"bug"}, issue.Labels)
}

func TestGitHubClient_CreateComment(t *testing.T) {
	t.Run("should post comment", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := newTestClient(&MockPRService{}, mockIssues, &MockRepoService{})

		mockIssues.On("CreateComment", mock.Anything, "test-owner", "test-repo", 42,
			mock.MatchedBy(func(c *github.IssueComment) bool {
				return c.GetBody() == "hola"
			})).Return(&github.IssueComment{}, &github.Response{}, nil)

		err := client.CreateComment(context.Background(), 42, "hola")
		assert.NoError(t, err)
		mockIssues.AssertExpectations(t)
	})

	t.Run("should explain 403 permission errors", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := newTestClient(&MockPRService{}, mockIssues, &MockRepoService{})

		resp := &github.Response{Response: &http.Response{StatusCode: http.StatusForbidden}}
		mockIssues.On("CreateComment", mock.Anything, "test-owner", "test-repo", 42, mock.Anything).
			Return(&github.IssueComment{}, resp, errors.New("403 Forbidden"))

		err := client.CreateComment(context.Background(), 42, "hola")
		require.Error(t, err)
		// El mensaje debe orientar al operador sobre los scopes del token
		assert.NotContains(t, err.Error(), "Translation missing")
	})
}

func TestGitHubClient_EnsureLabel(t *testing.T) {
	t.Run("should do nothing when label exists", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := newTestClient(&MockPRService{}, mockIssues, &MockRepoService{})

		mockIssues.On("ListLabels", mock.Anything, "test-owner", "test-repo", mock.Anything).
			Return([]*github.Label{{Name: github.Ptr("ai-assisted")}}, &github.Response{}, nil)

		err := client.EnsureLabel(context.Background(), "ai-assisted", "f29513", "AI-assisted content")
		assert.NoError(t, err)
		mockIssues.AssertNotCalled(t, "CreateLabel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should create label when missing", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := newTestClient(&MockPRService{}, mockIssues, &MockRepoService{})

		mockIssues.On("ListLabels", mock.Anything, "test-owner", "test-repo", mock.Anything).
			Return([]*github.Label{}, &github.Response{}, nil)
		mockIssues.On("CreateLabel", mock.Anything, "test-owner", "test-repo",
			mock.MatchedBy(func(l *github.Label) bool {
				return l.GetName() == "ai-assisted" && l.GetColor() == "f29513"
			})).Return(&github.Label{}, &github.Response{}, nil)

		err := client.EnsureLabel(context.Background(), "ai-assisted", "f29513", "AI-assisted content")
		assert.NoError(t, err)
		mockIssues.AssertExpectations(t)
	})

	t.Run("should fail when creation fails", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := newTestClient(&MockPRService{}, mockIssues, &MockRepoService{})

		mockIssues.On("ListLabels", mock.Anything, "test-owner", "test-repo", mock.Anything).
			Return([]*github.Label{}, &github.Response{}, nil)
		mockIssues.On("CreateLabel", mock.Anything, "test-owner", "test-repo", mock.Anything).
			Return((*github.Label)(nil), &github.Response{}, errors.New("permisos insuficientes"))

		err := client.EnsureLabel(context.Background(), "ai-assisted", "f29513", "AI-assisted content")
		assert.Error(t, err)
	})
}

func TestGitHubClient_AddLabels(t *testing.T) {
	t.Run("should skip empty label list", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := newTestClient(&MockPRService{}, mockIssues, &MockRepoService{})

		err := client.AddLabels(context.Background(), 42, nil)
		assert.NoError(t, err)
		mockIssues.AssertNotCalled(t, "AddLabelsToIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should apply labels", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := newTestClient(&MockPRService{}, mockIssues, &MockRepoService{})

		mockIssues.On("AddLabelsToIssue", mock.Anything, "test-owner", "test-repo", 42, []string{"ai-assisted"}).
			Return([]*github.Label{}, &github.Response{}, nil)

		err := client.AddLabels(context.Background(), 42, []string{"ai-assisted"})
		assert.NoError(t, err)
		mockIssues.AssertExpectations(t)
	})
}

func TestGitHubClient_GetFileContent(t *testing.T) {
	mockRepos := &MockRepoService{}
	client := newTestClient(&MockPRService{}, &MockIssuesService{}, mockRepos)

	content := "package main\n"
	mockRepos.On("GetContents", mock.Anything, "test-owner", "test-repo", "main.go",
		mock.MatchedBy(func(opts *github.RepositoryContentGetOptions) bool {
			return opts.Ref == "abc123"
		})).Return(&github.RepositoryContent{Content: github.Ptr(content)}, nil, &github.Response{}, nil)

	got, err := client.GetFileContent(context.Background(), "main.go", "abc123")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}
