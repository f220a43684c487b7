package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	dice "github.com/mapdice/dicecore"
)

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	response, _ := json.Marshal(data)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, err string) {
	respondWithJSON(w, code, map[string]string{
		"error": err,
	})
}

type rollResponse struct {
	Expression string             `json:"expression"`
	Display    string             `json:"display"`
	Total      dice.RollNumber    `json:"total"`
	Individual []*dice.DiceResult `json:"individuals"`
}

func evaluateExpression(w http.ResponseWriter, r *http.Request, expression string) {
	roll, err := dice.Parse(expression)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := roll.Evaluate(r.Context())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, rollResponse{
		Expression: expression,
		Display:    result.String(),
		Total:      result.Total,
		Individual: result.Individuals,
	})
}

// RollGetHandler handles GET /v1/roll/{expression}, a convenience endpoint
// for callers that can't easily send a JSON body.
func RollGetHandler(w http.ResponseWriter, r *http.Request) {
	evaluateExpression(w, r, mux.Vars(r)["expression"])
}

type rollRequest struct {
	Expression string `json:"expression"`
}

// RollPostHandler handles POST /v1/roll with a JSON body of the form
// {"expression": "2d20+5"}.
func RollPostHandler(w http.ResponseWriter, r *http.Request) {
	var req rollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	evaluateExpression(w, r, req.Expression)
}

// RootHandler handles requests to the base server.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"service": "dicecore",
	})
}

// HealthHandler handles GET /healthz.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}

// NotFoundHandler handles any unmatched route.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, "not found")
}
