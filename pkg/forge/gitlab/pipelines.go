package gitlab

import (
	"context"
	"io"
	"net/http"

	"github.com/lerenn/gcli/pkg/fetch"
	"github.com/lerenn/gcli/pkg/forge"
)

func (f *Forge) GetPipelines(ctx context.Context, owner, repo string, max int) ([]forge.Pipeline, error) {
	return list(ctx, f.t, project(owner, repo, "/pipelines"), nil, pipelineSchema, max)
}

func (f *Forge) GetPipelineJobs(ctx context.Context, owner, repo string, pipeline int64, max int) ([]forge.Job, error) {
	return list(ctx, f.t, project(owner, repo, "/pipelines/%d/jobs", pipeline), nil, jobSchema, max)
}

// JobGetLog writes the trace of a job.
func (f *Forge) JobGetLog(ctx context.Context, owner, repo string, job int64, w io.Writer) error {
	return fetch.Raw(ctx, f.t, project(owner, repo, "/jobs/%d/trace", job), "text/plain", w)
}

func (f *Forge) JobCancel(ctx context.Context, owner, repo string, job int64) error {
	return fetch.Exec(ctx, f.t, http.MethodPost, project(owner, repo, "/jobs/%d/cancel", job), nil)
}

func (f *Forge) JobRetry(ctx context.Context, owner, repo string, job int64) error {
	return fetch.Exec(ctx, f.t, http.MethodPost, project(owner, repo, "/jobs/%d/retry", job), nil)
}
