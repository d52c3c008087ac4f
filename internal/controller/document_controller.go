package controller

import (
	"io"

	"doc-agent-be/internal/dto"
	"doc-agent-be/internal/pkg/serverutils"
	"doc-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Tasks(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService  service.IDocumentService
	ingestionService service.IIngestionService
}

func NewDocumentController(documentService service.IDocumentService, ingestionService service.IIngestionService) IDocumentController {
	return &documentController{
		documentService:  documentService,
		ingestionService: ingestionService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("upload", c.Upload)
	h.Get("uploads", c.Tasks)
	h.Delete(":id", c.Delete)
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	refresh := ctx.QueryBool("refresh", false)

	res, err := c.documentService.List(ctx.Context(), refresh)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list documents", res))
}

// Upload accepts one or more files in the "files" field. Each file becomes
// its own task; a response is returned before ingestion finishes.
func (c *documentController) Upload(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "expected multipart form data")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no files provided")
	}

	tasks := make([]dto.UploadTaskResponse, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "cannot read uploaded file: "+fh.Filename)
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "cannot read uploaded file: "+fh.Filename)
		}

		task := c.ingestionService.StartUpload(fh.Filename, content)
		tasks = append(tasks, *task)
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Upload accepted", dto.UploadAcceptedResponse{Tasks: tasks}))
}

func (c *documentController) Tasks(ctx *fiber.Ctx) error {
	res := c.ingestionService.Tasks()
	return ctx.JSON(serverutils.SuccessResponse("Success list upload tasks", res))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "document id is required")
	}

	if err := c.documentService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete document", nil))
}
