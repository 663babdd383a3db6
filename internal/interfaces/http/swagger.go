package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// MountSwagger registra la UI de Swagger en /docs si el archivo de
// especificación existe. El middleware de contrib entra en pánico cuando el
// archivo falta, así que un despliegue sin docs arranca sin la UI en lugar
// de caerse.
func MountSwagger(app *fiber.App, filePath, title string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
