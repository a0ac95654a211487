// Package config provides configuration management for square-resize.
//
// The command line takes exactly three positional arguments, so every
// tunable lives here instead of in flags. Settings are layered:
//
//  1. DefaultSettings()
//  2. an optional JSON file named by RESIZE_CONFIG
//  3. RESIZE_* environment variables
//
// With nothing set, the defaults reproduce the plain behavior of the tool.
//
// # Loading
//
//	settings, warnings := config.Load()
//	for _, w := range warnings {
//	    // an unreadable file or a bad value was replaced by its default
//	}
//
// # Configuration Options
//
//	{
//	  "filter": "catmullrom",      // resampling filter, see Filters
//	  "jpeg_quality": 75,          // 1-100
//	  "png_compression": "default",// default, none, speed, best
//	  "log_level": "warn",         // debug, info, warn, error
//	  "verbose": false
//	}
//
// Each key can be overridden from the environment, e.g.
// RESIZE_FILTER=lanczos3 or RESIZE_JPEG_QUALITY=90.
package config
