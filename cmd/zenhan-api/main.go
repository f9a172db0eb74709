// @title         Zenhan API
// @version       0.1.0
// @description   Width normalization, language guessing, and scrubbing for Japanese text

package main

import (
	"context"

	"zenhan/internal/core/jptext"
	"zenhan/internal/core/profile"
	"zenhan/internal/platform/config"
	"zenhan/internal/platform/logger"
	phttp "zenhan/internal/platform/net/http"

	"zenhan/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (ZENHAN_API_*)
	root := config.New()
	apiCfg := root.Prefix("ZENHAN_API_")

	// bring up logging early
	l := logger.Get()

	// load the embedded profile set, optionally overlaid from disk
	var (
		profiles *profile.Set
		err      error
	)
	if path := apiCfg.MayString("PROFILES", ""); path != "" {
		profiles, err = profile.LoadFile(path)
	} else {
		profiles, err = profile.Load()
	}
	if err != nil {
		l.Panic().Err(err).Msg("profile.Load failed")
	}

	// http server (reads ZENHAN_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Text:           jptext.New(nil),
			Profiles:       profiles,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
