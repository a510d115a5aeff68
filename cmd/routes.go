package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/logout", authMiddleware.ThenFunc(app.userHandler.Logout))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/user/:id", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Del("/user/:id", authMiddleware.ThenFunc(app.userHandler.DeleteUser))
	mux.Post("/user/request_reset", standardMiddleware.ThenFunc(app.userHandler.RequestPasswordReset))
	mux.Post("/user/verify_reset_code", standardMiddleware.ThenFunc(app.userHandler.VerifyResetCode))
	mux.Post("/user/reset_password", standardMiddleware.ThenFunc(app.userHandler.ResetPassword))

	// Accommodations
	mux.Get("/accommodations/get", standardMiddleware.ThenFunc(app.accommodationHandler.GetAccommodations))
	mux.Get("/accommodations/room/:id", standardMiddleware.ThenFunc(app.accommodationHandler.GetAccommodationByID))
	mux.Get("/accommodations/by-user/:user_id", authMiddleware.ThenFunc(app.accommodationHandler.GetAccommodationsByUserID))
	mux.Post("/accommodations/add/:user_id", authMiddleware.ThenFunc(app.accommodationHandler.CreateAccommodation))
	mux.Put("/accommodations/update/:id", authMiddleware.ThenFunc(app.accommodationHandler.UpdateAccommodation))
	mux.Del("/accommodations/remove/:id", authMiddleware.ThenFunc(app.accommodationHandler.DeleteAccommodation))

	// Favorites
	mux.Get("/accommodations/favs/check/:user_id/:accommodation_id", authMiddleware.ThenFunc(app.favoriteHandler.IsFavorite))
	mux.Get("/accommodations/favs/:user_id", authMiddleware.ThenFunc(app.favoriteHandler.GetFavoritesByUser))
	mux.Post("/accommodations/favs/add/:user_id", authMiddleware.ThenFunc(app.favoriteHandler.AddToFavorites))
	mux.Del("/accommodations/favs/remove/:user_id", authMiddleware.ThenFunc(app.favoriteHandler.RemoveFromFavorites))

	// Listing detail (keep after the literal prefixes above)
	mux.Get("/accommodations/:id", standardMiddleware.ThenFunc(app.accommodationHandler.GetAccommodationByID))

	// Reviews
	mux.Post("/reviews/add-review/:accommodation_id", authMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/reviews/get-review/:accommodation_id", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewsByAccommodationID))
	mux.Put("/reviews/update-review/:accommodation_id", authMiddleware.ThenFunc(app.reviewHandler.UpdateReview))
	mux.Del("/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.DeleteReview))

	// Replies
	mux.Post("/replies/add-reply/:review_id", authMiddleware.ThenFunc(app.replyHandler.AddReply))
	mux.Get("/replies/get-reply/:review_id", standardMiddleware.ThenFunc(app.replyHandler.GetRepliesByReviewID))
	mux.Post("/replies/reply-reply/:parent_reply_id", authMiddleware.ThenFunc(app.replyHandler.AddNestedReply))
	mux.Get("/replies/get-reply-reply/:reply_id", standardMiddleware.ThenFunc(app.replyHandler.GetRepliesByParentID))

	// Live listing events
	mux.Get("/ws/listings", http.HandlerFunc(app.ListingEventsHandler))

	return standardMiddleware.Then(mux)
}
