package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/wizardchad/forum/internal/forum/service"
	"github.com/wizardchad/forum/pkg/httpx"
	"github.com/wizardchad/forum/pkg/slogx"
)

type ThreadsHandler struct {
	PostService *service.PostService
}

type threadListResponse struct {
	Threads []ThreadView `json:"threads"`
	Total   int64        `json:"total"`
}

// HandleList returns one page of threads, newest first.
func (h *ThreadsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, _ := strconv.ParseInt(r.URL.Query().Get("offset"), 10, 64)
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	page, err := h.PostService.ListThreads(ctx, offset, limit)
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	resp := threadListResponse{
		Threads: make([]ThreadView, 0, len(page.Threads)),
		Total:   page.Total,
	}
	for _, t := range page.Threads {
		resp.Threads = append(resp.Threads, newThreadView(t))
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

type threadDetailResponse struct {
	Thread  ThreadView  `json:"thread"`
	Replies []ReplyView `json:"replies"`
}

// HandleGet returns a thread and all of its replies, oldest reply first.
func (h *ThreadsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	thread, replies, err := h.PostService.GetThread(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	resp := threadDetailResponse{
		Thread:  newThreadView(thread),
		Replies: make([]ReplyView, 0, len(replies)),
	}
	for _, reply := range replies {
		resp.Replies = append(resp.Replies, newReplyView(reply))
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

type createThreadRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// HandleCreate starts a new thread owned by the caller.
func (h *ThreadsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req createThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	thread, err := h.PostService.CreateThread(ctx, httpx.UserIDFromContext(ctx), req.Title, req.Content)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("thread created", "thread_id", thread.ID)

	httpx.WriteJSON(w, http.StatusCreated, newThreadView(thread))
}

// HandleDelete removes a thread and its replies. Creator only.
func (h *ThreadsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	threadID := r.PathValue("id")
	if err := h.PostService.DeleteThread(ctx, httpx.UserIDFromContext(ctx), threadID); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("thread deleted", "thread_id", threadID)

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "thread deleted"})
}
