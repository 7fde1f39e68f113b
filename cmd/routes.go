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
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(""))
	hostMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("host"))
	cleanerMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("cleaner"))
	adminMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/refresh", standardMiddleware.ThenFunc(app.userHandler.Refresh))
	mux.Get("/user/me", authMiddleware.ThenFunc(app.userHandler.GetMe))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/user", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Del("/user", authMiddleware.ThenFunc(app.userHandler.DeleteUser))
	mux.Post("/user/change_password", authMiddleware.ThenFunc(app.userHandler.ChangePassword))
	mux.Post("/user/request_reset", standardMiddleware.ThenFunc(app.userHandler.RequestPasswordReset))
	mux.Post("/user/reset_password", standardMiddleware.ThenFunc(app.userHandler.ResetPassword))

	// Listings
	mux.Post("/api/listings", hostMiddleware.ThenFunc(app.listingHandler.CreateListing))
	mux.Post("/api/listings/quote", authMiddleware.ThenFunc(app.listingHandler.Quote))
	mux.Post("/api/listings/filtered", authMiddleware.ThenFunc(app.listingHandler.GetFilteredListings))
	mux.Get("/api/listings/mine", hostMiddleware.ThenFunc(app.listingHandler.GetMyListings))
	mux.Get("/api/listings/:id", authMiddleware.ThenFunc(app.listingHandler.GetListingByID))
	mux.Get("/api/listings", authMiddleware.ThenFunc(app.listingHandler.GetListings))
	mux.Put("/api/listings/:id", hostMiddleware.ThenFunc(app.listingHandler.UpdateListing))
	mux.Del("/api/listings/:id", hostMiddleware.ThenFunc(app.listingHandler.DeleteListing))
	mux.Get("/api/listings/:id/views", authMiddleware.ThenFunc(app.listingHandler.GetViews))
	mux.Post("/api/listings/:id/photos", hostMiddleware.ThenFunc(app.listingHandler.UploadPhoto))
	mux.Del("/api/listings/:id/photos", hostMiddleware.ThenFunc(app.listingHandler.DeletePhoto))

	// Applications
	mux.Post("/api/applications", cleanerMiddleware.ThenFunc(app.applicationHandler.CreateApplication))
	mux.Get("/api/applications/mine", cleanerMiddleware.ThenFunc(app.applicationHandler.GetMyApplications))
	mux.Get("/api/listings/:listing_id/applications", hostMiddleware.ThenFunc(app.applicationHandler.GetApplicationsByListingID))
	mux.Post("/api/applications/:id/reject", hostMiddleware.ThenFunc(app.applicationHandler.RejectApplication))
	mux.Del("/api/applications/:id", cleanerMiddleware.ThenFunc(app.applicationHandler.WithdrawApplication))

	// Bookings
	mux.Post("/api/applications/:application_id/accept", hostMiddleware.ThenFunc(app.bookingHandler.AcceptApplication))
	mux.Post("/api/bookings/:id/complete", hostMiddleware.ThenFunc(app.bookingHandler.CompleteBooking))
	mux.Post("/api/bookings/:id/cancel", authMiddleware.ThenFunc(app.bookingHandler.CancelBooking))
	mux.Get("/api/bookings/host", hostMiddleware.ThenFunc(app.bookingHandler.GetHostBookings))
	mux.Get("/api/bookings/cleaner", cleanerMiddleware.ThenFunc(app.bookingHandler.GetCleanerBookings))
	mux.Get("/api/bookings/:id", authMiddleware.ThenFunc(app.bookingHandler.GetBookingByID))

	// Reviews
	mux.Post("/api/reviews", hostMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/api/reviews/cleaner/:cleaner_id", authMiddleware.ThenFunc(app.reviewHandler.GetReviewsByCleanerID))
	mux.Put("/api/reviews/:id", hostMiddleware.ThenFunc(app.reviewHandler.UpdateReview))
	mux.Del("/api/reviews/:id/cleaner/:cleaner_id", adminMiddleware.ThenFunc(app.reviewHandler.DeleteReview))

	// Favorites
	mux.Post("/api/favorites/:listing_id", cleanerMiddleware.ThenFunc(app.favoriteHandler.AddToFavorites))
	mux.Del("/api/favorites/:listing_id", cleanerMiddleware.ThenFunc(app.favoriteHandler.RemoveFromFavorites))
	mux.Get("/api/favorites/check/:listing_id", cleanerMiddleware.ThenFunc(app.favoriteHandler.IsFavorite))
	mux.Get("/api/favorites", cleanerMiddleware.ThenFunc(app.favoriteHandler.GetMyFavorites))

	// Invoices and payments
	mux.Get("/api/invoices/:id", authMiddleware.ThenFunc(app.invoiceHandler.GetInvoiceByID))
	mux.Get("/api/invoices", authMiddleware.ThenFunc(app.invoiceHandler.GetMyInvoices))
	mux.Post("/api/invoices/:invoice_id/pay", hostMiddleware.ThenFunc(app.paymentHandler.PayInvoice))
	mux.Get("/api/payments", authMiddleware.ThenFunc(app.paymentHandler.GetPaymentHistory))

	// Notifications
	mux.Get("/ws", authMiddleware.ThenFunc(app.WebSocketHandler))
	mux.Post("/api/notify_tokens", authMiddleware.ThenFunc(app.fcmHandler.CreateToken))
	mux.Del("/api/notify_tokens/:token", authMiddleware.ThenFunc(app.fcmHandler.DeleteToken))

	return standardMiddleware.Then(mux)
}
