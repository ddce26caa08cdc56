package simply

import "strconv"

// RecordID is the service-assigned identifier of an existing DNS record.
// IDs are obtained from ListRecords and CreateRecord results; callers pass
// them back to UpdateRecord and DeleteRecord and never invent them.
type RecordID int64

func (id RecordID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Record is a DNS record as the service reports it. Priority is a pointer
// because 0 is a valid priority for record types that use one.
type Record struct {
	ID       RecordID `json:"record_id"`
	Name     string   `json:"name"`
	TTL      int      `json:"ttl"`
	Data     string   `json:"data"`
	Type     string   `json:"type"`
	Priority *int     `json:"priority,omitempty"`
	Comment  string   `json:"comment,omitempty"`
}

// CreateRequest carries the caller-supplied fields for a new record. Type,
// Name and Data are required by the service; nil TTL and Priority leave the
// choice to the service.
type CreateRequest struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Data     string `json:"data"`
	Priority *int   `json:"priority,omitempty"`
	TTL      *int   `json:"ttl,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// UpdateRequest replaces the mutable attributes of an existing record. The
// update endpoint does not accept a comment.
type UpdateRequest struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Data     string `json:"data"`
	Priority *int   `json:"priority,omitempty"`
	TTL      *int   `json:"ttl,omitempty"`
}

type listResponse struct {
	Records []Record `json:"records"`
}

// createResponse also carries status and message fields; the HTTP outcome is
// authoritative, so they are not inspected.
type createResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Record  []createdRecord `json:"record"`
}

type createdRecord struct {
	ID RecordID `json:"id"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}
