// Package handler provides typed HTTP handlers for the site.
//
// A HandlerFunc receives a Context and a request struct filled by binders,
// and returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	type courseRequest struct {
//		Slug string `path:"slug"`
//	}
//
//	show := func(ctx handler.Context, req courseRequest) handler.Response {
//		course, err := catalog.FindCourseBySlug(req.Slug)
//		if err != nil {
//			return handler.Error(handler.ErrNotFound)
//		}
//		return handler.Templ(views.CoursePage(ctx.Locale(), course))
//	}
//
//	r.Get("/{locale}/courses/{slug}", handler.Wrap(show,
//		handler.WithBinders[handler.Context, courseRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, courseRequest](errorHandler),
//	))
//
// # Responses
//
//	handler.Templ(component, handler.WithStatus(404)) // HTML page, or DataStar patch
//	handler.TemplPartial(partial, full, handler.WithTarget("#grid"))
//	handler.JSON(data, handler.WithJSONMeta(meta))   // {"data": ..., "meta": ...}
//	handler.JSONError(handler.ErrNotFound)           // {"error": {"code": "not_found"}}
//	handler.Redirect("/ko/courses")                  // 303, or SSE redirect for DataStar
//	handler.Blob("image/png", png)                   // raw bytes
//	handler.Error(err)                               // delegate to the ErrorHandler
//
// # Errors
//
// HTTPError pairs a status code with a translation key. NewErrorHandler
// classifies errors, logs them with the request ID and locale, and renders a
// localized error page, or a toast for DataStar requests.
package handler
