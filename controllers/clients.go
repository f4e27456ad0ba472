package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schedulepro-backend/scheduling"
	"schedulepro-backend/utils"
)

// CreateClientInput defines the expected JSON structure for registering a client
type CreateClientInput struct {
	Name      string `json:"name" binding:"required"`
	DOB       string `json:"dob"`
	Email     string `json:"email"`
	Cellphone string `json:"cellphone"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name      *string `json:"name"`
	DOB       *string `json:"dob"`
	Email     *string `json:"email"`
	Cellphone *string `json:"cellphone"`
}

type AddCommentInput struct {
	Text string `json:"text" binding:"required"`
}

// CreateClient registers a new client
func (a *API) CreateClient(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Cellphone != "" && !utils.ValidatePhone(input.Cellphone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client, err := a.sys.Clients.Register(scheduling.ClientInput{
		Name:      input.Name,
		DOB:       input.DOB,
		Email:     input.Email,
		Cellphone: input.Cellphone,
	})
	if err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// GetClients lists all clients, optionally filtered by ?q= on name or email
func (a *API) GetClients(c *gin.Context) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, a.sys.Clients.Search(q))
		return
	}
	c.JSON(http.StatusOK, a.sys.Clients.List())
}

// GetClient returns one client by id
func (a *API) GetClient(c *gin.Context) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}
	client, err := a.sys.Clients.Get(id)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient merges the provided fields into an existing client
func (a *API) UpdateClient(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}
	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Cellphone != nil && *input.Cellphone != "" && !utils.ValidatePhone(*input.Cellphone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client, err := a.sys.Clients.Update(id, scheduling.ClientPatch{
		Name:      input.Name,
		DOB:       input.DOB,
		Email:     input.Email,
		Cellphone: input.Cellphone,
	})
	if err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client with no remaining appointments
func (a *API) DeleteClient(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}
	if err := a.sys.Clients.Delete(id); err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

// AddClientComment appends a timestamped note to the client record
func (a *API) AddClientComment(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}
	var input AddCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := a.sys.Clients.AddComment(id, input.Text); err != nil {
		respondCoreError(c, err)
		return
	}
	client, err := a.sys.Clients.Get(id)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// UploadClientDocument stores a multipart file in the client's document
// namespace and attaches its reference to the record
func (a *API) UploadClientDocument(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}
	if _, err := a.sys.Clients.Get(id); err != nil {
		respondCoreError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing file field")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to read upload")
		return
	}
	defer f.Close()

	ref, err := a.docs.Save(id, fileHeader.Filename, f)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to store document: "+err.Error())
		return
	}
	if err := a.sys.Clients.AttachDocument(id, ref); err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ref)
}

// DownloadClientDocument streams a stored document back
func (a *API) DownloadClientDocument(c *gin.Context) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}
	filename := c.Param("filename")
	r, err := a.docs.Open(id, filename)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Document not found")
		return
	}
	defer r.Close()

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, r)
}

// ExportClientsCSV exports the directory as CSV
func (a *API) ExportClientsCSV(c *gin.Context) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	c.Header("Content-Disposition", `attachment; filename="clients_data.csv"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := utils.WriteClientsCSV(c.Writer, a.sys.Clients.List()); err != nil {
		_ = c.Error(err)
	}
}
