package preview

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/vango-dev/transitiongate/internal/errors"
	"github.com/vango-dev/transitiongate/internal/scenario"
	"github.com/vango-dev/transitiongate/pkg/transition"
	"github.com/vango-dev/transitiongate/pkg/vdom"
)

const maxBodySize = 1 << 20

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.LastFrame())
}

func (s *Server) handleSetChildren(w http.ResponseWriter, r *http.Request) {
	var node *scenario.Node
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&node); err != nil {
		s.writeError(w, errors.New("E401").Wrap(err))
		return
	}

	var children *vdom.VNode
	if node != nil {
		built, err := node.Build()
		if err != nil {
			s.writeError(w, errors.New("E401").Wrap(err))
			return
		}
		children = built
	}

	err := s.update(r.Context(), func(p transition.Props) transition.Props {
		p.Children = children
		return p
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.LastFrame())
}

func (s *Server) handleClearChildren(w http.ResponseWriter, r *http.Request) {
	err := s.update(r.Context(), func(p transition.Props) transition.Props {
		p.Children = nil
		return p
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.LastFrame())
}

func (s *Server) handlePatchProps(w http.ResponseWriter, r *http.Request) {
	var o scenario.Overrides
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&o); err != nil {
		s.writeError(w, errors.New("E401").Wrap(err))
		return
	}

	err := s.update(r.Context(), o.Apply)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.LastFrame())
}

func (s *Server) handlePlayScenario(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, errors.New("E401").Wrap(err))
		return
	}
	isJSON := r.Header.Get("Content-Type") == "application/json"
	sc, err := scenario.Parse(data, isJSON)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.play(r.Context(), sc); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// errorBody is the JSON error response.
type errorBody struct {
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.HasCode(err, "E401"), errors.HasCode(err, "E302"), errors.HasCode(err, "E303"):
		status = http.StatusBadRequest
	case errors.HasCode(err, "E101"), errors.HasCode(err, "E102"):
		status = http.StatusUnprocessableEntity
	case errors.HasCode(err, "E103"), errors.HasCode(err, "E104"):
		status = http.StatusServiceUnavailable
	}

	body := errorBody{Message: err.Error()}
	var ge *errors.GateError
	if stderrors.As(err, &ge) {
		body.Code = ge.Code
		body.Detail = ge.Detail
		body.Suggestion = ge.Suggestion
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
