//go:build unit

package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/lerenn/gcli/pkg/schema"
	"github.com/lerenn/gcli/pkg/transport"
	"github.com/lerenn/gcli/pkg/transport/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type item struct {
	Number int
	IsPull bool
}

var itemSchema = schema.NewObject("item",
	schema.Int("number", func(i *item) *int { return &i.Number }),
	schema.Present("pull_request", func(i *item) *bool { return &i.IsPull }),
)

// page renders items numbered from..from+n-1.
func page(from, n int) []byte {
	parts := make([]string, 0, n)
	for i := from; i < from+n; i++ {
		parts = append(parts, fmt.Sprintf(`{"number":%d}`, i))
	}
	return []byte("[" + strings.Join(parts, ",") + "]")
}

func get(url string) transport.Request {
	return transport.Request{Method: http.MethodGet, URL: url}
}

func TestList_AccumulatesAllPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)
	gomock.InOrder(
		tr.EXPECT().Do(gomock.Any(), get("p1")).Return(&transport.Response{StatusCode: 200, Body: page(1, 10), NextURL: "p2"}, nil),
		tr.EXPECT().Do(gomock.Any(), get("p2")).Return(&transport.Response{StatusCode: 200, Body: page(11, 10), NextURL: "p3"}, nil),
		tr.EXPECT().Do(gomock.Any(), get("p3")).Return(&transport.Response{StatusCode: 200, Body: page(21, 5)}, nil),
	)

	list, err := List(context.Background(), tr, ListParams[item]{URL: "p1", Parse: itemSchema.ParseArray, Max: -1})
	require.NoError(t, err)
	require.Len(t, list, 25)
	assert.Equal(t, 1, list[0].Number)
	assert.Equal(t, 25, list[24].Number)
}

func TestList_StopsAtMax(t *testing.T) {
	for _, max := range []int{1, 7, 10} {
		t.Run(fmt.Sprint(max), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tr := mocks.NewMockTransport(ctrl)
			tr.EXPECT().Do(gomock.Any(), get("p1")).
				Return(&transport.Response{StatusCode: 200, Body: page(1, 10), NextURL: "p2"}, nil).
				Times(1)

			list, err := List(context.Background(), tr, ListParams[item]{URL: "p1", Parse: itemSchema.ParseArray, Max: max})
			require.NoError(t, err)
			assert.Len(t, list, max)
			assert.Equal(t, max, list[len(list)-1].Number)
		})
	}
}

func TestList_MaxSpanningPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)
	gomock.InOrder(
		tr.EXPECT().Do(gomock.Any(), get("p1")).Return(&transport.Response{Body: page(1, 10), NextURL: "p2"}, nil),
		tr.EXPECT().Do(gomock.Any(), get("p2")).Return(&transport.Response{Body: page(11, 10), NextURL: "p3"}, nil),
	)

	list, err := List(context.Background(), tr, ListParams[item]{URL: "p1", Parse: itemSchema.ParseArray, Max: 15})
	require.NoError(t, err)
	require.Len(t, list, 15)
	assert.Equal(t, 15, list[14].Number)
}

func TestList_ZeroMaxFetchesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)

	list, err := List(context.Background(), tr, ListParams[item]{URL: "p1", Parse: itemSchema.ParseArray, Max: 0})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestList_EmptyPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)
	tr.EXPECT().Do(gomock.Any(), get("p1")).Return(&transport.Response{Body: []byte("[]")}, nil)

	list, err := List(context.Background(), tr, ListParams[item]{URL: "p1", Parse: itemSchema.ParseArray, Max: -1})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestList_ErrorMidPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)
	httpErr := &transport.HTTPError{StatusCode: 500, Status: "500 Internal Server Error"}
	gomock.InOrder(
		tr.EXPECT().Do(gomock.Any(), get("p1")).Return(&transport.Response{Body: page(1, 10), NextURL: "p2"}, nil),
		tr.EXPECT().Do(gomock.Any(), get("p2")).Return(nil, httpErr),
	)

	list, err := List(context.Background(), tr, ListParams[item]{URL: "p1", Parse: itemSchema.ParseArray, Max: -1})
	assert.Nil(t, list)
	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, transport.ErrHTTPStatus)

	var he *transport.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, 500, he.StatusCode)
}

func TestList_MalformedPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)
	tr.EXPECT().Do(gomock.Any(), get("p1")).Return(&transport.Response{Body: []byte(`[{"number":"x"}]`)}, nil)

	list, err := List(context.Background(), tr, ListParams[item]{URL: "p1", Parse: itemSchema.ParseArray, Max: -1})
	assert.Nil(t, list)
	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, schema.ErrStructural)
}

func TestList_TrailingContent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "extra bracket", body: `[{"number":1}]]`},
		{name: "garbage", body: `[{"number":1}] trailing`},
		{name: "second document", body: `[{"number":1}] [{"number":2}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tr := mocks.NewMockTransport(ctrl)
			tr.EXPECT().Do(gomock.Any(), get("p1")).Return(&transport.Response{Body: []byte(tt.body), NextURL: "p2"}, nil)

			list, err := List(context.Background(), tr, ListParams[item]{URL: "p1", Parse: itemSchema.ParseArray, Max: -1})
			assert.Nil(t, list)
			assert.ErrorIs(t, err, ErrParse)
			assert.ErrorIs(t, err, schema.ErrStructural)
		})
	}
}

func TestList_CappedPageConsumesWholeBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)
	tr.EXPECT().Do(gomock.Any(), get("p1")).Return(&transport.Response{Body: []byte("[{\"number\":1},{\"number\":2}]\n")}, nil)

	list, err := List(context.Background(), tr, ListParams[item]{URL: "p1", Parse: itemSchema.ParseArray, Max: 1})
	require.NoError(t, err)
	assert.Equal(t, []item{{Number: 1}}, list)
}

func TestList_FilterAppliesBeforeCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)
	gomock.InOrder(
		tr.EXPECT().Do(gomock.Any(), get("p1")).Return(&transport.Response{
			Body:    []byte(`[{"number":1,"pull_request":{}},{"number":2},{"number":3,"pull_request":{}}]`),
			NextURL: "p2",
		}, nil),
		tr.EXPECT().Do(gomock.Any(), get("p2")).Return(&transport.Response{
			Body:    []byte(`[{"number":4},{"number":5},{"number":6}]`),
			NextURL: "p3",
		}, nil),
	)

	list, err := List(context.Background(), tr, ListParams[item]{
		URL:    "p1",
		Parse:  itemSchema.ParseArray,
		Filter: func(i *item) bool { return !i.IsPull },
		Max:    2,
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].Number)
	assert.Equal(t, 4, list[1].Number)
}

func TestList_Envelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)
	tr.EXPECT().Do(gomock.Any(), get("search")).Return(&transport.Response{
		Body: []byte(`{"total_count":2,"items":[{"number":8},{"number":9}]}`),
	}, nil)

	list, err := List(context.Background(), tr, ListParams[item]{
		URL:   "search",
		Parse: schema.Envelope("items", itemSchema),
		Max:   -1,
	})
	require.NoError(t, err)
	assert.Equal(t, []item{{Number: 8}, {Number: 9}}, list)
}

func TestOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)
	tr.EXPECT().Do(gomock.Any(), get("issue/3")).Return(&transport.Response{Body: []byte(`{"number":3}`)}, nil)

	it, err := One(context.Background(), tr, "issue/3", itemSchema.Parse)
	require.NoError(t, err)
	assert.Equal(t, 3, it.Number)
}

func TestSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := []byte(`{"title":"x"}`)
	tr := mocks.NewMockTransport(ctrl)
	tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodPost, URL: "issues", Body: body}).
		Return(&transport.Response{StatusCode: 201, Body: []byte(`{"number":12}`)}, nil)

	it, err := Submit(context.Background(), tr, http.MethodPost, "issues", body, itemSchema.Parse)
	require.NoError(t, err)
	assert.Equal(t, 12, it.Number)
}

func TestSubmit_TrailingContent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "extra brace", body: `{"number":1}}`},
		{name: "garbage", body: `{"number":1} garbage`},
		{name: "second object", body: `{"number":1}{"number":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tr := mocks.NewMockTransport(ctrl)
			tr.EXPECT().Do(gomock.Any(), get("issue/1")).Return(&transport.Response{Body: []byte(tt.body)}, nil)

			it, err := One(context.Background(), tr, "issue/1", itemSchema.Parse)
			assert.Nil(t, it)
			assert.ErrorIs(t, err, ErrParse)
			assert.ErrorIs(t, err, schema.ErrStructural)
		})
	}
}

func TestExec(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)
	tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodDelete, URL: "labels/bug"}).
		Return(&transport.Response{StatusCode: 204}, nil)
	tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodDelete, URL: "labels/none"}).
		Return(nil, &transport.HTTPError{StatusCode: 404})

	require.NoError(t, Exec(context.Background(), tr, http.MethodDelete, "labels/bug", nil))
	assert.ErrorIs(t, Exec(context.Background(), tr, http.MethodDelete, "labels/none", nil), ErrFetch)
}

func TestRaw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)
	tr.EXPECT().Do(gomock.Any(), transport.Request{Method: http.MethodGet, URL: "pulls/1", Accept: "application/vnd.github.v3.diff"}).
		Return(&transport.Response{Body: []byte("diff --git a b\n")}, nil)

	var buf bytes.Buffer
	require.NoError(t, Raw(context.Background(), tr, "pulls/1", "application/vnd.github.v3.diff", &buf))
	assert.Equal(t, "diff --git a b\n", buf.String())
}
