package handlers

// AppHandlers agrupa todos los handlers para el cableado de rutas.
type AppHandlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Job         *JobHandler
	SavedItem   *SavedItemHandler
	Application *ApplicationHandler
}
