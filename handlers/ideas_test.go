// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"net/http"

	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/store"
	"github.com/danielhkuo/idea-board/testutil"
)

func TestCreateIdea(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewIdeaHandler(store.New(conn))

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, idea *models.Idea)
	}{
		{
			name: "valid idea",
			requestBody: models.CreateIdeaRequest{
				Author:       "alice",
				Title:        "Solar benches",
				Problem:      "Nowhere to charge a phone in the park",
				SolutionHint: "Benches with panels and USB ports",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, idea *models.Idea) {
				if idea.ID == 0 {
					t.Error("Expected assigned id")
				}
				if idea.Votes != 0 {
					t.Errorf("Expected votes 0, got %d", idea.Votes)
				}
				if idea.CreatedAt.IsZero() {
					t.Error("Expected created_at to be set")
				}
			},
		},
		{
			name: "author is optional",
			requestBody: models.CreateIdeaRequest{
				Title:        "Bike racks",
				Problem:      "No safe place to lock bikes",
				SolutionHint: "Covered racks near entrances",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing title",
			requestBody: models.CreateIdeaRequest{
				Problem:      "p",
				SolutionHint: "s",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "whitespace-only title is missing",
			requestBody: models.CreateIdeaRequest{
				Title:        "   \t ",
				Problem:      "p",
				SolutionHint: "s",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing problem",
			requestBody: models.CreateIdeaRequest{
				Title:        "t",
				SolutionHint: "s",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing solution hint",
			requestBody: models.CreateIdeaRequest{
				Title:   "t",
				Problem: "p",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "title at limit accepted",
			requestBody: models.CreateIdeaRequest{
				Title:        strings.Repeat("a", 160),
				Problem:      "p",
				SolutionHint: "s",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "title over limit rejected",
			requestBody: models.CreateIdeaRequest{
				Title:        strings.Repeat("a", 161),
				Problem:      "p",
				SolutionHint: "s",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "problem at limit accepted",
			requestBody: models.CreateIdeaRequest{
				Title:        "t",
				Problem:      strings.Repeat("b", 1000),
				SolutionHint: "s",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "problem over limit rejected",
			requestBody: models.CreateIdeaRequest{
				Title:        "t",
				Problem:      strings.Repeat("b", 1001),
				SolutionHint: "s",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "solution hint at limit accepted",
			requestBody: models.CreateIdeaRequest{
				Title:        "t",
				Problem:      "p",
				SolutionHint: strings.Repeat("c", 600),
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "solution hint over limit rejected",
			requestBody: models.CreateIdeaRequest{
				Title:        "t",
				Problem:      "p",
				SolutionHint: strings.Repeat("c", 601),
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/ideas", tc.requestBody, nil)
			w := httptest.NewRecorder()

			handler.CreateIdea(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)

			if tc.checkResponse != nil && w.Code == http.StatusCreated {
				var idea models.Idea
				testutil.AssertJSON(t, w, &idea)
				tc.checkResponse(t, &idea)
			}
		})
	}
}

func TestCreateIdea_InvalidJSON(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewIdeaHandler(store.New(conn))

	req := httptest.NewRequest("POST", "/ideas", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.CreateIdea(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestListIdeas_SortAndSearch(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewIdeaHandler(store.New(conn))

	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	t3 := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	idA := testutil.CreateTestIdea(t, conn, "Solar benches", "alice", 3, t1)
	idB := testutil.CreateTestIdea(t, conn, "Bike racks", "bob", 3, t2)
	idC := testutil.CreateTestIdea(t, conn, "Quiet rooms", "carol", 1, t3)

	tests := []struct {
		name     string
		query    string
		expected []int64
	}{
		{"default is top", "/ideas", []int64{idB, idA, idC}},
		{"explicit top", "/ideas?sort=top", []int64{idB, idA, idC}},
		{"new", "/ideas?sort=new", []int64{idC, idB, idA}},
		{"search title", "/ideas?search=solar", []int64{idA}},
		{"search author case-insensitive", "/ideas?search=BOB", []int64{idB}},
		{"search no match", "/ideas?search=zeppelin", []int64{}},
		{"search with sort", "/ideas?sort=new&search=r", []int64{idC, idB}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.query, nil)
			w := httptest.NewRecorder()

			handler.ListIdeas(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var ideas []models.Idea
			testutil.AssertJSON(t, w, &ideas)

			if len(ideas) != len(tc.expected) {
				t.Fatalf("Expected %d ideas, got %d", len(tc.expected), len(ideas))
			}
			for i, want := range tc.expected {
				if ideas[i].ID != want {
					t.Errorf("Position %d: expected id %d, got %d", i, want, ideas[i].ID)
				}
			}
		})
	}
}

func TestVote(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewIdeaHandler(store.New(conn))

	testutil.CreateTestIdea(t, conn, "Solar benches", "alice", 0, time.Now().UTC())

	vote := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/ideas/x/vote", nil)
		req.SetPathValue("id", "1")
		req.Header.Set("X-Voter-Token", token)
		w := httptest.NewRecorder()
		handler.Vote(w, req)
		return w
	}

	// First vote counts
	w := vote("voter-a")
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.AlreadyVoted {
		t.Error("Expected already_voted=false on first vote")
	}
	if resp.Idea.Votes != 1 {
		t.Errorf("Expected 1 vote, got %d", resp.Idea.Votes)
	}

	// Repeat from same identity: success, flagged, counter unchanged
	w = vote("voter-a")
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &resp)
	if !resp.AlreadyVoted {
		t.Error("Expected already_voted=true on repeat vote")
	}
	if resp.Idea.Votes != 1 {
		t.Errorf("Expected counter unchanged at 1, got %d", resp.Idea.Votes)
	}

	// Different identity counts again
	w = vote("voter-b")
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &resp)
	if resp.AlreadyVoted {
		t.Error("Expected already_voted=false for a new identity")
	}
	if resp.Idea.Votes != 2 {
		t.Errorf("Expected 2 votes, got %d", resp.Idea.Votes)
	}
}

func TestVote_MalformedID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewIdeaHandler(store.New(conn))

	req := httptest.NewRequest("POST", "/ideas/abc/vote", nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	handler.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestVote_MissingIdea(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewIdeaHandler(store.New(conn))

	req := httptest.NewRequest("POST", "/ideas/999/vote", nil)
	req.SetPathValue("id", "999")
	w := httptest.NewRecorder()

	handler.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestVote_FallbackIdentity(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewIdeaHandler(store.New(conn))

	testutil.CreateTestIdea(t, conn, "Solar benches", "alice", 0, time.Now().UTC())

	vote := func(addr, agent string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/ideas/1/vote", nil)
		req.SetPathValue("id", "1")
		req.RemoteAddr = addr
		req.Header.Set("User-Agent", agent)
		w := httptest.NewRecorder()
		handler.Vote(w, req)
		return w
	}

	// No token: same address+agent collapses to one identity
	w := vote("203.0.113.5:1111", "curl/8.0")
	var resp models.VoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.AlreadyVoted {
		t.Error("Expected first fallback vote to count")
	}

	w = vote("203.0.113.5:2222", "curl/8.0") // different port, same IP
	testutil.AssertJSON(t, w, &resp)
	if !resp.AlreadyVoted {
		t.Error("Expected same IP+agent to be the same identity")
	}

	// Different agent is a different identity
	w = vote("203.0.113.5:3333", "Mozilla/5.0")
	testutil.AssertJSON(t, w, &resp)
	if resp.AlreadyVoted {
		t.Error("Expected different user agent to be a new identity")
	}
	if resp.Idea.Votes != 2 {
		t.Errorf("Expected 2 votes, got %d", resp.Idea.Votes)
	}
}
