// Command symgo-server exposes the symgo engine over HTTP.
//
// Expressions travel as JSON trees; one POST /op call runs one engine
// operation (simplify, derivative, evaluate, evaluate_vector,
// substitute, display, variables).
//
// Usage:
//
//	symgo-server serve --port 8080 --auto-simplify=true
//
// Flags may also be set through the environment (SYMGO_PORT,
// SYMGO_AUTO_SIMPLIFY).
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/njchilds90/symgo"
)

const maxBodyBytes = 1 << 20 // 1 MiB

var rootCmd = &cobra.Command{
	Use:   "symgo-server",
	Short: "HTTP facade for the symgo symbolic math engine",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the engine on POST /op",
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		cfg := symgo.Config{
			AutoSimplify:   viper.GetBool("auto-simplify"),
			PowerFoldWidth: viper.GetInt("power-fold-width"),
		}
		builder := symgo.NewBuilder(cfg)
		return serve(builder, viper.GetInt("port"))
	},
}

func serve(builder *symgo.Builder, port int) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/op", func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithField("panic", rec).Error(string(debug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req symgo.OpRequest
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, symgo.OpResponse{Error: err.Error()})
			return
		}
		if dec.More() {
			writeJSON(w, http.StatusBadRequest, symgo.OpResponse{Error: "invalid JSON: trailing data"})
			return
		}

		start := time.Now()
		resp := symgo.HandleOp(builder, req)
		log.WithFields(log.Fields{
			"op":      req.Op,
			"elapsed": time.Since(start),
			"failed":  resp.Error != "",
		}).Debug("handled op")
		writeJSON(w, http.StatusOK, resp)
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	addr := fmt.Sprintf(":%d", port)
	log.WithField("addr", addr).Info("symgo server listening")

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on")
	serveCmd.Flags().Bool("auto-simplify", true, "simplify expressions as they are built")
	serveCmd.Flags().Int("power-fold-width", symgo.DefaultPowerFoldWidth,
		"max decimal width for numerically folded powers")
	serveCmd.Flags().Bool("verbose", false, "enable debug logging")

	_ = viper.BindPFlags(serveCmd.Flags())
	viper.SetEnvPrefix("SYMGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
