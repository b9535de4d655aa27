package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jsphweid/tonal/calc"
	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/note"
	"github.com/jsphweid/tonal/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the calculator over HTTP",
	Long:  `Serves notes, intervals, chords, scale degrees and expressions as JSON over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

type server struct {
	chords        *lru.Cache[string, model.ChordResult]
	defaultOctave int
}

// NewRouter returns the HTTP API with CORS and request logging applied.
func NewRouter(cacheSize, defaultOctave int, allowedOrigins []string) (http.Handler, error) {
	cache, err := lru.New[string, model.ChordResult](cacheSize)
	if err != nil {
		return nil, err
	}
	s := &server{chords: cache, defaultOctave: defaultOctave}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestLogger)
	router.HandleFunc("/notes/{notation}", s.handleNote).Methods("GET")
	router.HandleFunc("/intervals/{notation}", s.handleInterval).Methods("GET")
	router.HandleFunc("/chords/{symbol}", s.handleChord).Methods("GET")
	router.HandleFunc("/scales/{tonic}/{quality}/degrees/{number:[0-9]+}", s.handleDegree).Methods("GET")
	router.HandleFunc("/eval", s.handleEval).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		ExposedHeaders: []string{constants.RequestIDHeader},
	})
	return c.Handler(router), nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set(constants.RequestIDHeader, id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("%v %v %v %v %v", id, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var pe *model.ParseError
	var qe *model.InvalidQualityError
	var te *model.TypeMismatchError
	status := http.StatusInternalServerError
	if errors.As(err, &pe) || errors.As(err, &qe) || errors.As(err, &te) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: msg})
}

func (s *server) handleNote(w http.ResponseWriter, r *http.Request) {
	n, err := note.Parse(mux.Vars(r)["notation"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, noteResult(n))
}

func (s *server) handleInterval(w http.ResponseWriter, r *http.Request) {
	i, err := interval.Parse(mux.Vars(r)["notation"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, intervalResult(i))
}

func (s *server) handleChord(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	octave := s.defaultOctave
	if val := r.URL.Query().Get("octave"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			badRequest(w, "octave must be an integer")
			return
		}
		octave = parsed
	}

	key := fmt.Sprintf("%v@%v", symbol, octave)
	if res, ok := s.chords.Get(key); ok {
		writeJSON(w, http.StatusOK, res)
		return
	}
	c, err := chord.Build(symbol, octave)
	if err != nil {
		writeError(w, err)
		return
	}
	res := chordResult(c)
	s.chords.Add(key, res)
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleDegree(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tonic, err := note.Parse(vars["tonic"])
	if err != nil {
		writeError(w, err)
		return
	}
	quality, err := scale.ParseQuality(vars["quality"])
	if err != nil {
		writeError(w, err)
		return
	}
	number, err := strconv.Atoi(vars["number"])
	if err != nil {
		badRequest(w, "degree must be an integer")
		return
	}
	query := r.URL.Query()
	seventh := query.Get("seventh") == "true"
	var extend int
	if val := query.Get("extend"); val != "" {
		extend, err = strconv.Atoi(val)
		if err != nil || extend < 0 {
			badRequest(w, "extend must be a non-negative integer")
			return
		}
	}

	sc, err := scale.New(tonic, quality)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := degreeResult(sc, number, seventh, extend, s.defaultOctave)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleEval(w http.ResponseWriter, r *http.Request) {
	var input model.EvalRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "Could not unmarshal request body: "+err.Error())
		return
	}
	v, err := calc.Eval(input.Expr)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evalResult(input.Expr, v))
}

func serve() error {
	handler, err := NewRouter(constants.GetCacheSize(), constants.GetDefaultOctave(), constants.GetAllowedOrigins())
	if err != nil {
		return err
	}
	addr := constants.GetAddr()
	log.Printf("Listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
	return nil
}
