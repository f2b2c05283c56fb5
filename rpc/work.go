package rpc

// WorkGenerate computes proof of work for a block hash.
func (c *Client) WorkGenerate(hash string) (string, error) {
	var out struct {
		Work *string `json:"work"`
	}
	if err := c.call("work_generate", params{"hash": hash}, &out); err != nil {
		return "", err
	}
	return requireField("work_generate", "work", out.Work)
}

// WorkCancel aborts an in-flight work generation for hash.
func (c *Client) WorkCancel(hash string) error {
	return c.call("work_cancel", params{"hash": hash}, nil)
}

// WorkValidate checks a work value against a block hash.
func (c *Client) WorkValidate(work, hash string) (bool, error) {
	var out struct {
		Valid string `json:"valid"`
	}
	p := params{"work": work, "hash": hash}
	if err := c.call("work_validate", p, &out); err != nil {
		return false, err
	}
	return parseBool("work_validate", "valid", out.Valid)
}
