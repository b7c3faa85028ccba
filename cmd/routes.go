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
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Users
	mux.Post("/usuarios/register", standardMiddleware.ThenFunc(app.userHandler.Register))
	mux.Post("/usuarios/login", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/usuarios/list", authMiddleware.ThenFunc(app.userHandler.GetAllUsers))
	mux.Get("/usuarios/email/:email", authMiddleware.ThenFunc(app.userHandler.GetUserByEmail))
	mux.Get("/usuarios/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/usuarios/:id", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Add("PATCH", "/usuarios/:id/password", authMiddleware.ThenFunc(app.userHandler.ChangePassword))
	mux.Add("PATCH", "/usuarios/:id/role", adminAuthMiddleware.ThenFunc(app.userHandler.ChangeRole))
	mux.Add("PATCH", "/usuarios/:id/status", adminAuthMiddleware.ThenFunc(app.userHandler.ChangeStatus))
	mux.Add("PATCH", "/usuarios/:id/allergens", authMiddleware.ThenFunc(app.userHandler.SetAllergens))
	mux.Del("/usuarios/:id", authMiddleware.ThenFunc(app.userHandler.DeleteUser))

	// Establishments
	mux.Post("/establecimientos", authMiddleware.ThenFunc(app.establishmentHandler.CreateEstablishment))
	mux.Get("/establecimientos/list", standardMiddleware.ThenFunc(app.establishmentHandler.GetAllEstablishments))
	mux.Get("/establecimientos/:id/categorias", standardMiddleware.ThenFunc(app.establishmentHandler.GetCategories))
	mux.Get("/establecimientos/:id", standardMiddleware.ThenFunc(app.establishmentHandler.GetEstablishmentByID))
	mux.Put("/establecimientos/:id", authMiddleware.ThenFunc(app.establishmentHandler.UpdateEstablishment))
	mux.Post("/establecimientos/:id/logo", authMiddleware.ThenFunc(app.establishmentHandler.UploadLogo))
	mux.Post("/establecimientos/:id/categoria/:categoria_id", authMiddleware.ThenFunc(app.establishmentHandler.AddCategory))
	mux.Del("/establecimientos/:id/categoria/:categoria_id", authMiddleware.ThenFunc(app.establishmentHandler.RemoveCategory))
	mux.Del("/establecimientos/:id", authMiddleware.ThenFunc(app.establishmentHandler.DeleteEstablishment))

	// Menus
	mux.Post("/menu/:establecimiento_id", authMiddleware.ThenFunc(app.menuHandler.CreateMenu))
	mux.Get("/menu/list/:menu_id", standardMiddleware.ThenFunc(app.menuHandler.GetMenuDishes))
	mux.Get("/menu/establecimiento/:establecimiento_id", standardMiddleware.ThenFunc(app.menuHandler.GetMenusByEstablishmentID))
	mux.Get("/menu/:menu_id/categoria/:categoria_id", standardMiddleware.ThenFunc(app.menuHandler.GetMenuDishesByCategory))
	mux.Get("/menu/:menu_id/item/:item_id", standardMiddleware.ThenFunc(app.menuHandler.GetMenuDish))
	mux.Put("/menu/:menu_id", authMiddleware.ThenFunc(app.menuHandler.UpdateMenu))
	mux.Del("/menu/:menu_id", authMiddleware.ThenFunc(app.menuHandler.DeleteMenu))

	// Dishes
	mux.Get("/platos/list", standardMiddleware.ThenFunc(app.dishHandler.GetAllDishes))
	mux.Post("/platos", authMiddleware.ThenFunc(app.dishHandler.CreateDish))
	mux.Get("/platos/:dish_id/alergeno", standardMiddleware.ThenFunc(app.allergenHandler.GetAllergensByDishID))
	mux.Get("/platos/:id", standardMiddleware.ThenFunc(app.dishHandler.GetDishByID))
	mux.Put("/platos/:id", authMiddleware.ThenFunc(app.dishHandler.UpdateDish))
	mux.Post("/platos/:id/imagen", authMiddleware.ThenFunc(app.dishHandler.UploadImg))
	mux.Post("/platos/:id/categoria/:categoria_id", authMiddleware.ThenFunc(app.dishHandler.AddCategory))
	mux.Del("/platos/:id/categoria/:categoria_id", authMiddleware.ThenFunc(app.dishHandler.RemoveCategory))
	mux.Post("/platos/:id/alergeno/:allergen_id", authMiddleware.ThenFunc(app.dishHandler.AddAllergen))
	mux.Del("/platos/:id/alergeno/:allergen_id", authMiddleware.ThenFunc(app.dishHandler.RemoveAllergen))
	mux.Del("/platos/:id", authMiddleware.ThenFunc(app.dishHandler.DeleteDish))

	// Categories
	mux.Get("/categorias/list", standardMiddleware.ThenFunc(app.categoryHandler.GetAllCategories))
	mux.Post("/categorias", authMiddleware.ThenFunc(app.categoryHandler.CreateCategory))
	mux.Get("/categorias/:id", standardMiddleware.ThenFunc(app.categoryHandler.GetCategoryByID))
	mux.Put("/categorias/:id", authMiddleware.ThenFunc(app.categoryHandler.UpdateCategory))
	mux.Del("/categorias/:id", authMiddleware.ThenFunc(app.categoryHandler.DeleteCategory))

	// Allergens
	mux.Post("/allergen/user/:user_id/:allergen_id", authMiddleware.ThenFunc(app.allergenHandler.AddAllergenToUser))
	mux.Del("/allergen/user/:user_id/:allergen_id", authMiddleware.ThenFunc(app.allergenHandler.RemoveAllergenFromUser))
	mux.Get("/allergen/dish/:dish_id", standardMiddleware.ThenFunc(app.allergenHandler.GetAllergensByDishID))
	mux.Get("/allergen/user/:user_id", authMiddleware.ThenFunc(app.allergenHandler.GetAllergensByUserID))
	mux.Post("/allergen", authMiddleware.ThenFunc(app.allergenHandler.CreateAllergen))
	mux.Get("/allergen/:id", standardMiddleware.ThenFunc(app.allergenHandler.GetAllergenByID))
	mux.Get("/allergen", standardMiddleware.ThenFunc(app.allergenHandler.GetAllAllergens))
	mux.Put("/allergen/:id", authMiddleware.ThenFunc(app.allergenHandler.UpdateAllergen))
	mux.Del("/allergen/:id", authMiddleware.ThenFunc(app.allergenHandler.DeleteAllergen))

	// Accessibility features
	mux.Get("/accesibilidad/list", standardMiddleware.ThenFunc(app.featureHandler.GetAllFeatures))
	mux.Get("/accesibilidad/establecimiento/:establecimiento_id", standardMiddleware.ThenFunc(app.featureHandler.GetFeaturesByEstablishmentID))
	mux.Post("/accesibilidad", authMiddleware.ThenFunc(app.featureHandler.CreateFeature))
	mux.Get("/accesibilidad/:id", standardMiddleware.ThenFunc(app.featureHandler.GetFeatureByID))
	mux.Put("/accesibilidad/:id", authMiddleware.ThenFunc(app.featureHandler.UpdateFeature))
	mux.Del("/accesibilidad/:id", authMiddleware.ThenFunc(app.featureHandler.DeleteFeature))

	// Reservations
	mux.Post("/reservas", authMiddleware.ThenFunc(app.reservationHandler.CreateReservation))
	mux.Get("/reservas/list", authMiddleware.ThenFunc(app.reservationHandler.GetAllReservations))
	mux.Get("/reservas/usuario/:usuario_id", authMiddleware.ThenFunc(app.reservationHandler.GetReservationsByUserID))
	mux.Get("/reservas/establecimiento/:establecimiento_id", authMiddleware.ThenFunc(app.reservationHandler.GetReservationsByEstablishmentID))
	mux.Get("/reservas/:id", authMiddleware.ThenFunc(app.reservationHandler.GetReservationByID))
	mux.Put("/reservas/:id", authMiddleware.ThenFunc(app.reservationHandler.UpdateReservation))
	mux.Add("PATCH", "/reservas/:id/cancelar", authMiddleware.ThenFunc(app.reservationHandler.CancelReservation))
	mux.Del("/reservas/:id", authMiddleware.ThenFunc(app.reservationHandler.DeleteReservation))

	// Reviews
	mux.Post("/resenas", authMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/resenas/list", standardMiddleware.ThenFunc(app.reviewHandler.GetAllReviews))
	mux.Get("/resenas/usuario/:usuario_id/establecimiento/:establecimiento_id", standardMiddleware.ThenFunc(app.reviewHandler.GetReview))
	mux.Get("/resenas/establecimiento/:establecimiento_id", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewsByEstablishmentID))
	mux.Get("/resenas/usuario/:usuario_id", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewsByUserID))
	mux.Put("/resenas/usuario/:usuario_id/establecimiento/:establecimiento_id", authMiddleware.ThenFunc(app.reviewHandler.UpdateReview))
	mux.Del("/resenas/usuario/:usuario_id/establecimiento/:establecimiento_id", authMiddleware.ThenFunc(app.reviewHandler.DeleteReview))

	return mux
}
