package store

import (
	"orgboard/pkg/orgboard"
)

// AddInquiry records one visitor question with pending status.
func (c *Container) AddInquiry(content string) (orgboard.Inquiry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardOpenLocked("add inquiry"); err != nil {
		return orgboard.Inquiry{}, err
	}

	inquiry := orgboard.Inquiry{
		ID:        c.newID(),
		Content:   content,
		Status:    orgboard.InquiryStatusPending,
		CreatedAt: c.now(),
	}
	c.inquiries = append([]orgboard.Inquiry{inquiry}, c.inquiries...)
	c.persistLocked()
	c.notifyLocked(ChangeKindInquiries)

	return inquiry, nil
}

// AnswerInquiry stores answer and transitions the inquiry to answered.
//
// Calling it twice with the same arguments is idempotent in effect. An
// absent id is a no-op.
func (c *Container) AnswerInquiry(id string, answer string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardOpenLocked("answer inquiry"); err != nil {
		return false, err
	}

	for index := range c.inquiries {
		if c.inquiries[index].ID != id {
			continue
		}
		c.inquiries[index].Status = orgboard.InquiryStatusAnswered
		c.inquiries[index].Answer = answer
		c.persistLocked()
		c.notifyLocked(ChangeKindInquiries)

		return true, nil
	}

	return false, nil
}

// DeleteInquiry removes the matching inquiry. An absent id is a no-op.
func (c *Container) DeleteInquiry(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardOpenLocked("delete inquiry"); err != nil {
		return false, err
	}

	for index := range c.inquiries {
		if c.inquiries[index].ID != id {
			continue
		}
		c.inquiries = append(c.inquiries[:index], c.inquiries[index+1:]...)
		c.persistLocked()
		c.notifyLocked(ChangeKindInquiries)

		return true, nil
	}

	return false, nil
}
